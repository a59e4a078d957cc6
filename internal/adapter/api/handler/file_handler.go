package handler

import (
	"github.com/labstack/echo/v4"

	"filesmanager/internal/adapter/api/middleware"
	"filesmanager/internal/domain/entity"
	"filesmanager/internal/usecase"
	"filesmanager/pkg/errors"
	"filesmanager/pkg/response"
	"filesmanager/pkg/utils"
)

type FileHandler struct {
	fileUseCase *usecase.FileUseCase
}

func NewFileHandler(fileUseCase *usecase.FileUseCase) *FileHandler {
	return &FileHandler{fileUseCase: fileUseCase}
}

type uploadRequest struct {
	Name     string      `json:"name"`
	Type     string      `json:"type"`
	ParentID interface{} `json:"parentId"`
	IsPublic bool        `json:"isPublic"`
	Data     string      `json:"data"`
}

// fileResponse is the wire shape of an entry. The root parent is surfaced
// as the numeric sentinel 0, any other parent as its id; the stored
// content path is never exposed.
type fileResponse struct {
	ID       string      `json:"id"`
	UserID   string      `json:"userId"`
	Name     string      `json:"name"`
	Type     string      `json:"type"`
	IsPublic bool        `json:"isPublic"`
	ParentID interface{} `json:"parentId"`
}

func newFileResponse(f *entity.File) fileResponse {
	var parent interface{} = 0
	if f.ParentID != "" {
		parent = f.ParentID
	}
	return fileResponse{
		ID:       f.ID,
		UserID:   f.UserID,
		Name:     f.Name,
		Type:     f.Type,
		IsPublic: f.IsPublic,
		ParentID: parent,
	}
}

// normalizeParentID folds the two historical root spellings ("0" and the
// number 0) into the internal empty-string root.
func normalizeParentID(v interface{}) (string, bool) {
	switch p := v.(type) {
	case nil:
		return "", true
	case string:
		if p == "" || p == "0" {
			return "", true
		}
		return p, true
	case float64:
		if p == 0 {
			return "", true
		}
		return "", false
	default:
		return "", false
	}
}

func (h *FileHandler) PostUpload(c echo.Context) error {
	var req uploadRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	parentID, ok := normalizeParentID(req.ParentID)
	if !ok {
		return response.Error(c, errors.BadRequest("Invalid parentId format", nil))
	}

	file, err := h.fileUseCase.Upload(c.Request().Context(), usecase.UploadInput{
		UserID:   middleware.UserID(c),
		Name:     req.Name,
		Type:     req.Type,
		ParentID: parentID,
		IsPublic: req.IsPublic,
		Data:     req.Data,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, newFileResponse(file))
}

func (h *FileHandler) GetShow(c echo.Context) error {
	file, err := h.fileUseCase.Show(c.Request().Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.JSON(c, newFileResponse(file))
}

func (h *FileHandler) GetIndex(c echo.Context) error {
	parentID := c.QueryParam("parentId")
	if parentID == "0" {
		parentID = ""
	}

	files, err := h.fileUseCase.Index(c.Request().Context(), middleware.UserID(c), parentID, utils.PageParam(c))
	if err != nil {
		return response.Error(c, err)
	}

	// Always an array, never null.
	out := make([]fileResponse, 0, len(files))
	for _, f := range files {
		out = append(out, newFileResponse(f))
	}
	return response.JSON(c, out)
}

func (h *FileHandler) PutPublish(c echo.Context) error {
	return h.setPublic(c, true)
}

func (h *FileHandler) PutUnpublish(c echo.Context) error {
	return h.setPublic(c, false)
}

func (h *FileHandler) setPublic(c echo.Context, value bool) error {
	file, err := h.fileUseCase.SetPublic(c.Request().Context(), middleware.UserID(c), c.Param("id"), value)
	if err != nil {
		return response.Error(c, err)
	}
	return response.JSON(c, newFileResponse(file))
}

func (h *FileHandler) GetFile(c echo.Context) error {
	data, contentType, err := h.fileUseCase.Content(
		c.Request().Context(),
		middleware.UserID(c),
		c.Param("id"),
		c.QueryParam("size"),
	)
	if err != nil {
		return response.Error(c, err)
	}
	return c.Blob(200, contentType, data)
}
