package images

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	imagesvc "github.com/jardinverde/gardenia/internal/service/images"
)

// UploadInput for POST /images
type UploadInput struct {
	RawBody huma.MultipartFormFiles[UploadForm]
}

// UploadForm is the multipart payload.
type UploadForm struct {
	File huma.FormFile `form:"file" contentType:"image/*" required:"true"`
}

// UploadOutput for POST /images
type UploadOutput struct {
	Body struct {
		URL string `json:"url" doc:"Public URL of the stored image"`
	}
}

// Register registers the image upload endpoint.
func Register(api huma.API, uploader imagesvc.Uploader) {
	huma.Register(api, huma.Operation{
		OperationID:   "upload-image",
		Method:        http.MethodPost,
		Path:          "/images",
		Summary:       "Upload an image",
		Description:   "Stores an image with the media host and returns its public URL.",
		Tags:          []string{"Images"},
		DefaultStatus: http.StatusCreated,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *UploadInput) (*UploadOutput, error) {
		form := input.RawBody.Data()
		url, err := uploader.Upload(ctx, form.File.Filename, form.File.File)
		if err != nil {
			if errors.Is(err, imagesvc.ErrUploadFailed) {
				return nil, huma.Error502BadGateway("image host rejected the upload")
			}
			return nil, huma.Error500InternalServerError("internal error")
		}
		out := &UploadOutput{}
		out.Body.URL = url
		return out, nil
	})
}
