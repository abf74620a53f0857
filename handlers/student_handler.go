package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Afriels/Presensi-Fix/database"
	"github.com/Afriels/Presensi-Fix/models"
)

type StudentHandler struct{}

func NewStudentHandler() *StudentHandler { return &StudentHandler{} }

type studentPayload struct {
	NIS      string `json:"nis" validate:"required,max=30"`
	Name     string `json:"name" validate:"required,max=100"`
	ClassID  string `json:"class_id" validate:"omitempty,uuid"`
	PhotoURL string `json:"photo_url" validate:"omitempty,max=255"`
}

func (p *studentPayload) normalize() {
	p.NIS = strings.TrimSpace(p.NIS)
	p.Name = strings.Join(strings.Fields(p.Name), " ")
	p.ClassID = strings.TrimSpace(p.ClassID)
	p.PhotoURL = strings.TrimSpace(p.PhotoURL)
}

func (p *studentPayload) toModel() models.Student {
	s := models.Student{NIS: p.NIS, Name: p.Name, PhotoURL: p.PhotoURL}
	if p.ClassID != "" {
		s.ClassID = &p.ClassID
	}
	return s
}

// GET /students?q=&class_id=&page=&size=
func (h *StudentHandler) List(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	classID := strings.TrimSpace(c.QueryParam("class_id"))
	page := 1
	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil && v > 0 {
		page = v
	}
	size := 20
	if v, err := strconv.Atoi(c.QueryParam("size")); err == nil {
		if v < 1 {
			size = 1
		} else if v > 100 {
			size = 100
		} else {
			size = v
		}
	}

	tx := database.DB.Model(&models.Student{})
	if q != "" {
		like := "%" + q + "%"
		tx = tx.Where("nis ILIKE ? OR name ILIKE ?", like, like)
	}
	if classID != "" {
		tx = tx.Where("class_id = ?", classID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_COUNT_FAILED"})
	}
	var items []models.Student
	if err := tx.Order("name ASC, nis ASC").Limit(size).Offset((page - 1) * size).Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"data":  items,
		"page":  page,
		"size":  size,
		"total": total,
	})
}

// GET /students/:nis
func (h *StudentHandler) Get(c echo.Context) error {
	var s models.Student
	if err := database.DB.First(&s, "nis = ?", c.Param("nis")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, s)
}

// POST /students
func (h *StudentHandler) Create(c echo.Context) error {
	var p studentPayload
	if err := bindAndValidate(c, &p); err != nil {
		return err
	}
	p.normalize()

	s := p.toModel()
	if err := database.DB.Create(&s).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, s)
}

// PUT /students/:nis — the NIS is the primary key and cannot change.
func (h *StudentHandler) Update(c echo.Context) error {
	nis := c.Param("nis")
	var existing models.Student
	if err := database.DB.First(&existing, "nis = ?", nis).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}

	var p studentPayload
	if err := bindAndValidate(c, &p); err != nil {
		return err
	}
	p.normalize()
	if p.NIS != nis {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "NIS_IMMUTABLE"})
	}

	existing.Name = p.Name
	existing.PhotoURL = p.PhotoURL
	existing.ClassID = nil
	if p.ClassID != "" {
		existing.ClassID = &p.ClassID
	}
	if err := database.DB.Save(&existing).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, existing)
}

// DELETE /students/:nis
func (h *StudentHandler) Delete(c echo.Context) error {
	if err := database.DB.Delete(&models.Student{}, "nis = ?", c.Param("nis")).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

// POST /students/import — JSON array, all-or-nothing like the old bulk
// import screen.
func (h *StudentHandler) Import(c echo.Context) error {
	var arr []studentPayload
	if err := c.Bind(&arr); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}

	inserted := make([]models.Student, 0, len(arr))
	issues := []map[string]any{}
	for i, p := range arr {
		p.normalize()
		if err := validate.Struct(&p); err != nil {
			issues = append(issues, map[string]any{"index": i, "error": err.Error()})
			continue
		}
		inserted = append(inserted, p.toModel())
	}
	if len(issues) > 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "BULK_VALIDATION_ERROR", "issues": issues})
	}
	if len(inserted) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "EMPTY_PAYLOAD"})
	}
	if err := database.DB.Create(&inserted).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"inserted": len(inserted)})
}
