package client

import (
	"context"
	"io"

	"github.com/dmitrijs2005/gophdrop/internal/client/models"
	"github.com/dmitrijs2005/gophdrop/internal/netx"
)

// ProgressFunc receives upload progress as an integer percentage.
type ProgressFunc = netx.ProgressFunc

// Client is the boundary to the storage API. It issues remote calls and
// builds URLs; it holds no file state.
type Client interface {
	Close() error
	Ping(ctx context.Context) error
	PingDatabase(ctx context.Context) error
	ListFiles(ctx context.Context) ([]models.FileRecord, error)
	GetFile(ctx context.Context, id string) (*models.FileRecord, error)
	UploadFile(ctx context.Context, data []byte, filename string, onProgress ProgressFunc) (*models.FileRecord, error)
	DownloadFile(ctx context.Context, id string) (io.ReadCloser, error)
	DeleteFile(ctx context.Context, id string) error
	DownloadURL(id string) string
	ViewURL(id string) string
}
