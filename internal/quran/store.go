package quran

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/rs/zerolog/log"

	"github.com/alfarizi/ramadhan-companion/internal/model"
)

// ErrNotCached is returned when a surah is absent from the store.
var ErrNotCached = errors.New("quran: surah not cached")

// SurahStore is the offline object store keyed by surah number. A stored
// surah is never partially updated: it is either absent or complete.
type SurahStore interface {
	Get(ctx context.Context, number int) (*model.Surah, error)
	Put(ctx context.Context, surah *model.Surah) error
	ListNumbers(ctx context.Context) ([]int, error)
}

// LocalStore keeps surahs as JSON files in a directory.
type LocalStore struct {
	dir string
}

var _ SurahStore = (*LocalStore)(nil)

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create surah store directory %s: %w", dir, err)
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) path(number int) string {
	return filepath.Join(s.dir, fmt.Sprintf("surah_%03d.json", number))
}

func (s *LocalStore) Get(_ context.Context, number int) (*model.Surah, error) {
	data, err := os.ReadFile(s.path(number))
	if err != nil {
		return nil, ErrNotCached
	}
	var surah model.Surah
	if err := json.Unmarshal(data, &surah); err != nil {
		// Corrupt file reads as a miss; remove it so the next fill is clean.
		_ = os.Remove(s.path(number))
		return nil, ErrNotCached
	}
	return &surah, nil
}

func (s *LocalStore) Put(_ context.Context, surah *model.Surah) error {
	data, err := json.Marshal(surah)
	if err != nil {
		return fmt.Errorf("failed to marshal surah %d: %w", surah.Number, err)
	}
	if err := os.WriteFile(s.path(surah.Number), data, 0o644); err != nil {
		return fmt.Errorf("failed to write surah %d: %w", surah.Number, err)
	}
	return nil
}

func (s *LocalStore) ListNumbers(_ context.Context) ([]int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	var numbers []int
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, "surah_") || !strings.HasSuffix(name, ".json") {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(name, "surah_"), ".json"))
		if err != nil {
			continue
		}
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	return numbers, nil
}

// SpacesStore keeps surahs in an S3-compatible bucket (DigitalOcean Spaces).
type SpacesStore struct {
	client *s3.S3
	bucket string
	prefix string
}

var _ SurahStore = (*SpacesStore)(nil)

func NewSpacesStore(endpoint, region, bucket, accessKey, secretKey string) (*SpacesStore, error) {
	config := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(accessKey, secretKey, ""),
		Endpoint:         aws.String(endpoint),
		Region:           aws.String(region),
		S3ForcePathStyle: aws.Bool(false),
	}

	sess, err := session.NewSession(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &SpacesStore{client: s3.New(sess), bucket: bucket, prefix: "quran/"}, nil
}

func (s *SpacesStore) key(number int) string {
	return fmt.Sprintf("%ssurah_%03d.json", s.prefix, number)
}

func (s *SpacesStore) Get(ctx context.Context, number int) (*model.Surah, error) {
	out, err := s.client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(number)),
	})
	if err != nil {
		var aerr awserr.Error
		if errors.As(err, &aerr) && aerr.Code() == s3.ErrCodeNoSuchKey {
			return nil, ErrNotCached
		}
		return nil, err
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, err
	}
	var surah model.Surah
	if err := json.Unmarshal(data, &surah); err != nil {
		log.Warn().Int("surah", number).Msg("corrupt surah object, treating as miss")
		return nil, ErrNotCached
	}
	return &surah, nil
}

func (s *SpacesStore) Put(ctx context.Context, surah *model.Surah) error {
	data, err := json.Marshal(surah)
	if err != nil {
		return fmt.Errorf("failed to marshal surah %d: %w", surah.Number, err)
	}

	_, err = s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key(surah.Number)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to store surah %d: %w", surah.Number, err)
	}
	return nil
}

func (s *SpacesStore) ListNumbers(ctx context.Context) ([]int, error) {
	var numbers []int
	err := s.client.ListObjectsV2PagesWithContext(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(s.prefix),
	}, func(page *s3.ListObjectsV2Output, _ bool) bool {
		for _, obj := range page.Contents {
			name := strings.TrimPrefix(aws.StringValue(obj.Key), s.prefix)
			name = strings.TrimSuffix(strings.TrimPrefix(name, "surah_"), ".json")
			if n, err := strconv.Atoi(name); err == nil {
				numbers = append(numbers, n)
			}
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	sort.Ints(numbers)
	return numbers, nil
}

// MemoryStore is an in-memory SurahStore for tests.
type MemoryStore struct {
	mu     sync.RWMutex
	surahs map[int]*model.Surah
}

var _ SurahStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{surahs: make(map[int]*model.Surah)}
}

func (s *MemoryStore) Get(_ context.Context, number int) (*model.Surah, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	surah, ok := s.surahs[number]
	if !ok {
		return nil, ErrNotCached
	}
	return surah, nil
}

func (s *MemoryStore) Put(_ context.Context, surah *model.Surah) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.surahs[surah.Number] = surah
	return nil
}

func (s *MemoryStore) ListNumbers(_ context.Context) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	numbers := make([]int, 0, len(s.surahs))
	for n := range s.surahs {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	return numbers, nil
}
