package api

// Common request/response structures

// GenerateCommentRequest defines the payload for the comment-batch endpoint.
type GenerateCommentRequest struct {
	Context string `json:"context" validate:"required"`
}

// GeneratePostContentRequest defines the payload for the post-content endpoint.
type GeneratePostContentRequest struct {
	Theme string `json:"theme" validate:"required"`
}

// CommentsResponse defines the successful response for the comment-batch
// endpoint. The list length is whatever the model produced; it is not
// guaranteed to equal the internally requested count.
type CommentsResponse struct {
	Comments []string `json:"comments"`
}

// PostContentResponse defines the successful response for the post-content
// endpoint.
type PostContentResponse struct {
	PostText string `json:"postText"`
}

// PingResponse defines the liveness check response.
type PingResponse struct {
	Status string `json:"status"`
}
