package entity

// ThumbnailJob asks the worker to generate resized derivatives for an
// uploaded file. It lives only on the queue, never in the database.
type ThumbnailJob struct {
	UserID string `json:"userId"`
	FileID string `json:"fileId"`
}

// WelcomeJob asks the worker to emit a welcome notification for a new user.
type WelcomeJob struct {
	UserID string `json:"userId"`
}
