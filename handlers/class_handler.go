package handlers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Afriels/Presensi-Fix/database"
	"github.com/Afriels/Presensi-Fix/models"
)

type ClassHandler struct{}

func NewClassHandler() *ClassHandler { return &ClassHandler{} }

type classPayload struct {
	Name string `json:"name" validate:"required,max=50"`
}

// GET /classes
func (h *ClassHandler) List(c echo.Context) error {
	var items []models.Class
	if err := database.DB.Order("name ASC").Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, items)
}

// POST /classes
func (h *ClassHandler) Create(c echo.Context) error {
	var p classPayload
	if err := bindAndValidate(c, &p); err != nil {
		return err
	}
	item := models.Class{ID: uuid.NewString(), Name: strings.TrimSpace(p.Name)}
	if err := database.DB.Create(&item).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, item)
}

// PUT /classes/:id
func (h *ClassHandler) Update(c echo.Context) error {
	var existing models.Class
	if err := database.DB.First(&existing, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	var p classPayload
	if err := bindAndValidate(c, &p); err != nil {
		return err
	}
	existing.Name = strings.TrimSpace(p.Name)
	if err := database.DB.Save(&existing).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, existing)
}

// DELETE /classes/:id — deletion proceeds and dependent students become
// classless; students are never deleted with their class.
func (h *ClassHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Student{}).
			Where("class_id = ?", id).
			Update("class_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Class{}, "id = ?", id).Error
	})
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
