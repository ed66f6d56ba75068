package http

type productRequest struct {
	Name string `json:"name" validate:"required"`
}

type createUpdateRequest struct {
	Title     string `json:"title" validate:"required"`
	Body      string `json:"body" validate:"required"`
	Status    string `json:"status" validate:"omitempty,oneof=IN_PROGRESS SHIPPED DEPRECATED"`
	Version   string `json:"version"`
	ProductID string `json:"productId" validate:"required"`
}

type updateUpdateRequest struct {
	Title   *string `json:"title"`
	Body    *string `json:"body"`
	Status  *string `json:"status"`
	Version *string `json:"version"`
}

type createUpdatePointRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	UpdateID    string `json:"updateId" validate:"required"`
}

type updateUpdatePointRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
