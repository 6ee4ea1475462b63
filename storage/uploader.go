package storage

import (
	"context"
	"io"
	"path"
	"strings"

	"github.com/Dosada05/scouting-system/utils"
)

type UploadResult struct {
	Key      string
	Location string
	ETag     string
}

// FileUploader stores game videos in an object store.
type FileUploader interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)

	Delete(ctx context.Context, key string) error

	GetPublicURL(key string) string
}

// VideoKey builds the object key of an uploaded game video. The random
// segment keeps re-uploads of the same file name apart.
func VideoKey(tournamentID, gameID, filename string) string {
	name := path.Base(strings.ReplaceAll(strings.TrimSpace(filename), "\\", "/"))
	if name == "." || name == "/" || name == "" {
		name = "video"
	}
	return path.Join("videos", tournamentID, gameID, utils.MakeID()+"-"+name)
}
