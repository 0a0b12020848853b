package handler

import (
	"context"
	"fmt"
	"io"
	"math"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/petmart/petmart-api/internal/model"
	"github.com/petmart/petmart-api/internal/repository"
	"github.com/petmart/petmart-api/internal/service"
)

// AdminProductHandler owns catalog writes. Requests arrive as multipart
// forms because product creation carries an optional image blob alongside
// the fields. Every successful write invalidates the catalog response cache
// before responding so the next public read reflects the change.
type AdminProductHandler struct {
	Products    *repository.ProductRepo
	Invalidator service.CatalogInvalidator
	UploadDir   string
}

func NewAdminProductHandler(p *repository.ProductRepo, inv service.CatalogInvalidator, uploadDir string) *AdminProductHandler {
	return &AdminProductHandler{Products: p, Invalidator: inv, UploadDir: uploadDir}
}

// productForm collects the multipart fields shared by create and update.
type productForm struct {
	Name        string
	Type        model.PetType
	Breed       string
	Age         string
	Gender      string
	Description string
	PriceCents  int64
	Status      model.ProductStatus
}

// parseProductForm validates the multipart fields, reporting every failing
// field at once like the reservation validator does.
func parseProductForm(c echo.Context, requireStatus bool) (*productForm, *model.ValidationError) {
	fields := map[string]string{}
	form := &productForm{
		Name:        strings.TrimSpace(c.FormValue("name")),
		Breed:       strings.TrimSpace(c.FormValue("breed")),
		Age:         strings.TrimSpace(c.FormValue("age")),
		Gender:      strings.TrimSpace(c.FormValue("gender")),
		Description: strings.TrimSpace(c.FormValue("description")),
	}

	if form.Name == "" {
		fields["name"] = "name is required"
	}
	t, err := model.ParsePetType(c.FormValue("type"))
	if err != nil {
		fields["type"] = "type must be one of DOG, CAT, BIRD, OTHER"
	}
	form.Type = t

	price, err := strconv.ParseFloat(strings.TrimSpace(c.FormValue("price")), 64)
	if err != nil || price < 0 {
		fields["price"] = "price must be a non-negative number"
	} else {
		form.PriceCents = int64(math.Round(price * 100))
	}

	form.Status = model.StatusAvailable
	if raw := strings.TrimSpace(c.FormValue("status")); raw != "" {
		status, err := model.ParseProductStatus(raw)
		if err != nil {
			fields["status"] = "status must be one of AVAILABLE, PENDING, ADOPTED"
		} else {
			form.Status = status
		}
	} else if requireStatus {
		fields["status"] = "status is required"
	}

	if len(fields) > 0 {
		return nil, &model.ValidationError{Fields: fields}
	}
	return form, nil
}

// nextCode generates the next free product code in the P001, P002, ...
// sequence. Gaps from deleted products are skipped over by probing.
func (h *AdminProductHandler) nextCode(ctx context.Context) (string, error) {
	var count int64
	if err := h.Products.DB().QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return "", err
	}
	for n := count + 1; ; n++ {
		code := fmt.Sprintf("P%03d", n)
		exists, err := h.Products.ExistsCode(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
}

// saveImage stores the uploaded blob under the upload dir, named after the
// product code, and returns the public path. The extension is taken from
// the uploaded filename.
func (h *AdminProductHandler) saveImage(file *multipart.FileHeader, code string) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		ext = ".jpg"
	}
	if err := os.MkdirAll(h.UploadDir, 0o755); err != nil {
		return "", err
	}
	name := code + ext
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()
	dst, err := os.Create(filepath.Join(h.UploadDir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return "/product-images/" + name, nil
}

// removeImage deletes a previously stored image file. Best effort: the
// catalog row is authoritative, a leftover file only wastes disk.
func (h *AdminProductHandler) removeImage(imagePath string) {
	if imagePath == "" {
		return
	}
	name := filepath.Base(imagePath)
	_ = os.Remove(filepath.Join(h.UploadDir, name))
}

func (h *AdminProductHandler) invalidate(ctx context.Context, c echo.Context) {
	if h.Invalidator == nil {
		return
	}
	if err := h.Invalidator.Invalidate(ctx); err != nil {
		c.Logger().Warnf("catalog cache invalidation failed: %v", err)
	}
}

// Create adds a product to the catalog with a generated code and an
// optional image.
//
// POST /api/admin/products (multipart)
func (h *AdminProductHandler) Create(c echo.Context) error {
	form, verr := parseProductForm(c, false)
	if verr != nil {
		return respondError(c, verr)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	code, err := h.nextCode(ctx)
	if err != nil {
		return respondError(c, err)
	}

	imagePath := ""
	if file, err := c.FormFile("fileData"); err == nil && file != nil {
		if imagePath, err = h.saveImage(file, code); err != nil {
			return respondError(c, err)
		}
	}

	p := &model.Product{
		Code:        code,
		Name:        form.Name,
		Type:        form.Type,
		Breed:       form.Breed,
		Age:         form.Age,
		Gender:      form.Gender,
		Description: form.Description,
		PriceCents:  form.PriceCents,
		ImagePath:   imagePath,
		Status:      form.Status,
	}
	if err := h.Products.Create(ctx, p); err != nil {
		h.removeImage(imagePath)
		return respondError(c, err)
	}

	h.invalidate(ctx, c)
	return c.JSON(http.StatusCreated, p)
}

// Update replaces a product's fields and optionally its image.
//
// PUT /api/admin/products/:code (multipart)
func (h *AdminProductHandler) Update(c echo.Context) error {
	code := strings.TrimSpace(c.Param("code"))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	existing, err := h.Products.GetByCode(ctx, code)
	if err != nil {
		return respondError(c, err)
	}

	// Updates must state the status explicitly: an omitted field must not
	// silently reset an ADOPTED product to AVAILABLE.
	form, verr := parseProductForm(c, true)
	if verr != nil {
		return respondError(c, verr)
	}

	imagePath := existing.ImagePath
	if file, err := c.FormFile("fileData"); err == nil && file != nil {
		newPath, err := h.saveImage(file, code)
		if err != nil {
			return respondError(c, err)
		}
		if existing.ImagePath != "" && existing.ImagePath != newPath {
			h.removeImage(existing.ImagePath)
		}
		imagePath = newPath
	}

	p := &model.Product{
		Code:        code,
		Name:        form.Name,
		Type:        form.Type,
		Breed:       form.Breed,
		Age:         form.Age,
		Gender:      form.Gender,
		Description: form.Description,
		PriceCents:  form.PriceCents,
		ImagePath:   imagePath,
		Status:      form.Status,
	}
	if err := h.Products.Update(ctx, p); err != nil {
		return respondError(c, err)
	}

	h.invalidate(ctx, c)
	updated, err := h.Products.GetByCode(ctx, code)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete removes a product and its image. Cart lines pointing at the code
// surface as unavailable on the next read; reservation snapshots keep their
// frozen copy.
//
// DELETE /api/admin/products/:code
func (h *AdminProductHandler) Delete(c echo.Context) error {
	code := strings.TrimSpace(c.Param("code"))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	existing, err := h.Products.GetByCode(ctx, code)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.Products.Delete(ctx, code); err != nil {
		return respondError(c, err)
	}
	h.removeImage(existing.ImagePath)

	h.invalidate(ctx, c)
	return c.JSON(http.StatusOK, echo.Map{"message": "product deleted"})
}
