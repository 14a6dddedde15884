package s3

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjects struct {
	mu      sync.Mutex
	objects map[string]string
	failPut bool
}

func newFakeObjects() *fakeObjects {
	return &fakeObjects{objects: map[string]string{}}
}

func (f *fakeObjects) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	v, ok := f.objects[*in.Bucket+"/"+*in.Key]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(v))}, nil
}

func (f *fakeObjects) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.failPut {
		return nil, errors.New("access denied")
	}
	b, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[*in.Bucket+"/"+*in.Key] = string(b)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeObjects) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.objects, *in.Bucket+"/"+*in.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func TestKV_UsesPrefixedJSONObjects(t *testing.T) {
	ctx := context.Background()
	fake := newFakeObjects()
	s := newWithClient(fake, "vet", "stable-a/")

	_, found, err := s.Get(ctx, "horse_medical_h1_care")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "horse_medical_h1_care", `{"dental":[]}`))
	assert.Contains(t, fake.objects, "vet/stable-a/horse_medical_h1_care.json")

	v, found, err := s.Get(ctx, "horse_medical_h1_care")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"dental":[]}`, v)

	require.NoError(t, s.Remove(ctx, "horse_medical_h1_care"))
	require.NoError(t, s.Remove(ctx, "horse_medical_h1_care"))
	assert.Empty(t, fake.objects)
}

func TestKV_SetPropagatesErrors(t *testing.T) {
	fake := newFakeObjects()
	fake.failPut = true
	s := newWithClient(fake, "vet", "")

	err := s.Set(context.Background(), "k", "v")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}
