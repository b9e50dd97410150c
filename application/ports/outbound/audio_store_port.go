package outbound

import "context"

type UploadAudioRequest struct {
	FileName  string
	ObjectKey string
}

type AudioStorePort interface {
	// Upload stores the local file and returns the public URL of the object.
	Upload(ctx context.Context, req UploadAudioRequest) (string, error)
}
