package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"salespage/internal/storage"
	storeMocks "salespage/internal/storage/mocks"
)

// pngBytes is a 1x1 transparent PNG.
var pngBytes = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func TestImageService_Upload(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		filename   string
		body       []byte
		size       int64
		nilReader  bool
		setupMocks func(mStore *storeMocks.MockStorage)
		wantErr    error
		wantErrMsg string
		check      func(t *testing.T, key, url string)
	}{
		{
			name:     "happy path",
			filename: "Foto Perfil.PNG",
			body:     pngBytes,
			size:     int64(len(pngBytes)),
			setupMocks: func(mStore *storeMocks.MockStorage) {
				mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
					return strings.HasPrefix(key, ImagePrefix) && strings.HasSuffix(key, ".png")
				}), mock.Anything, mock.MatchedBy(func(opt storage.PutObjectOptions) bool {
					return opt.ContentType == "image/png" &&
						opt.Size == int64(len(pngBytes)) &&
						opt.Metadata["original-filename"] == "Foto Perfil.PNG" &&
						opt.Metadata["owner"] == ownerID
				})).Return(func(_ context.Context, key string, r io.Reader, _ storage.PutObjectOptions) storage.ObjectInfo {
					b, _ := io.ReadAll(r)
					return storage.ObjectInfo{Key: key, Size: int64(len(b)), ContentType: "image/png"}
				}, nil)
				mStore.On("PublicURL", mock.Anything).Return("https://cdn.example.com/landing-images/x.png")
			},
			check: func(t *testing.T, key, url string) {
				assert.True(t, strings.HasPrefix(key, ImagePrefix))
				assert.Equal(t, "https://cdn.example.com/landing-images/x.png", url)
			},
		},
		{
			name:      "nil reader",
			nilReader: true,
			wantErr:   ErrReaderNil,
		},
		{
			name:     "declared size over limit",
			filename: "big.png",
			body:     pngBytes,
			size:     2048,
			wantErr:  ErrTooLarge,
		},
		{
			name:     "text disguised as image",
			filename: "foto.png",
			body:     []byte("hello, this is not a picture"),
			size:     28,
			wantErr:  ErrNotImage,
		},
		{
			name:     "svg rejected",
			filename: "logo.svg",
			body:     []byte(`<svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script></svg>`),
			size:     72,
			wantErr:  ErrNotImage,
		},
		{
			name:     "empty body",
			filename: "vazio.png",
			body:     []byte{},
			wantErr:  ErrNotImage,
		},
		{
			name:     "storage error",
			filename: "foto.png",
			body:     pngBytes,
			size:     int64(len(pngBytes)),
			setupMocks: func(mStore *storeMocks.MockStorage) {
				mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
					Return(storage.ObjectInfo{}, errors.New("storage fail"))
			},
			wantErrMsg: "upload to storage: storage fail",
		},
		{
			name:     "stream longer than limit is rolled back",
			filename: "foto.png",
			body:     append(append([]byte{}, pngBytes...), bytes.Repeat([]byte{0}, 2048)...),
			setupMocks: func(mStore *storeMocks.MockStorage) {
				mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.MatchedBy(func(opt storage.PutObjectOptions) bool {
					return opt.Size == -1
				})).Return(func(_ context.Context, key string, r io.Reader, _ storage.PutObjectOptions) storage.ObjectInfo {
					b, _ := io.ReadAll(r)
					return storage.ObjectInfo{Key: key, Size: int64(len(b))}
				}, nil)
				mStore.On("Delete", ctx, mock.Anything).Return(nil)
			},
			wantErr: ErrTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStore := new(storeMocks.MockStorage)
			if tt.setupMocks != nil {
				tt.setupMocks(mStore)
			}
			svc := NewImageService(mStore, 1024, nil, nil)

			var r io.Reader
			if !tt.nilReader {
				r = bytes.NewReader(tt.body)
			}
			img, err := svc.Upload(ctx, ownerID, r, tt.filename, tt.size)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, img)
			case tt.wantErrMsg != "":
				assert.EqualError(t, err, tt.wantErrMsg)
				assert.Nil(t, img)
			default:
				require.NoError(t, err)
				assert.Equal(t, "image/png", img.ContentType)
				assert.Equal(t, int64(len(pngBytes)), img.Size)
				tt.check(t, img.Key, img.URL)
			}
			mStore.AssertExpectations(t)
		})
	}
}

func TestImageService_Open(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		body := io.NopCloser(bytes.NewReader(pngBytes))
		mStore.On("Get", ctx, "landing-images/a.png").
			Return(body, storage.ObjectInfo{Key: "landing-images/a.png", ContentType: "image/png"}, nil)
		svc := NewImageService(mStore, 0, nil, nil)

		rc, info, err := svc.Open(ctx, "/landing-images/a.png")

		require.NoError(t, err)
		defer rc.Close()
		assert.Equal(t, "image/png", info.ContentType)
	})

	t.Run("missing", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mStore.On("Get", ctx, "landing-images/b.png").
			Return(nil, storage.ObjectInfo{}, storage.ErrNotFound)
		svc := NewImageService(mStore, 0, nil, nil)

		_, _, err := svc.Open(ctx, "landing-images/b.png")

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("outside image prefix", func(t *testing.T) {
		svc := NewImageService(new(storeMocks.MockStorage), 0, nil, nil)

		for _, key := range []string{"secrets/db.txt", "landing-images/../secrets.txt"} {
			_, _, err := svc.Open(ctx, key)
			assert.ErrorIs(t, err, ErrNotFound, key)
		}
	})
}
