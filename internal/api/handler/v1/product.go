package v1

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kasirgo/pos-api/internal/api/handler/v1/request"
	"github.com/kasirgo/pos-api/internal/api/handler/v1/response"
	"github.com/kasirgo/pos-api/internal/config"
	"github.com/kasirgo/pos-api/internal/domain"
	"github.com/kasirgo/pos-api/internal/service"
)

type ProductService interface {
	CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id uint) (domain.Product, error)
	UpdateProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	DeleteProduct(ctx context.Context, id uint) error
}

type ProductHandler struct {
	conf *config.APIConfig
	svc  ProductService
}

func NewProductHandler(conf *config.APIConfig, svc ProductService) *ProductHandler {
	return &ProductHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleListProducts godoc
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Success      200  {array}   domain.Product
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /products [get]
// @Security BearerAuth
func (h *ProductHandler) HandleListProducts(ctx *gin.Context) {
	products, err := h.svc.ListProducts(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListProducts -> h.svc.ListProducts -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, products)
}

// HandleCreateProduct godoc
// @Summary      Add a new product
// @Description  Accepts JSON or multipart/form-data with an optional image file
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        request   body      request.ProductRequest true "request body"
// @Success      201      {object}   map[string]string
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /products [post]
// @Security BearerAuth
func (h *ProductHandler) HandleCreateProduct(ctx *gin.Context) {
	product, respErr := h.bindProduct(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	if _, err := h.svc.CreateProduct(ctx.Request.Context(), product); err != nil {
		err = fmt.Errorf("v1.HandleCreateProduct -> h.svc.CreateProduct -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Product added successfully"})
}

// HandleUpdateProduct godoc
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id        path       int true "product ID"
// @Param        request   body       request.ProductRequest true "request body"
// @Success      200      {object}    map[string]string
// @Failure      400      {object}    response.Err
// @Failure      401      {object}    response.Err
// @Failure      404      {object}    response.Err
// @Failure      500      {object}    response.Err
// @Router       /products/{id} [put]
// @Security BearerAuth
func (h *ProductHandler) HandleUpdateProduct(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid product id")))

		return
	}

	product, respErr := h.bindProduct(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}
	product.ID = uint(id)

	if _, err := h.svc.UpdateProduct(ctx.Request.Context(), product); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("product", "id", id))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateProduct -> h.svc.UpdateProduct -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Product updated successfully"})
}

// HandleDeleteProduct godoc
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Param        id   path       int true "product ID"
// @Success      200  {object}   map[string]string
// @Failure      400  {object}   response.Err
// @Failure      401  {object}   response.Err
// @Failure      404  {object}   response.Err
// @Failure      500  {object}   response.Err
// @Router       /products/{id} [delete]
// @Security BearerAuth
func (h *ProductHandler) HandleDeleteProduct(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid product id")))

		return
	}

	if err := h.svc.DeleteProduct(ctx.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("product", "id", id))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteProduct -> h.svc.DeleteProduct -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

func (h *ProductHandler) bindProduct(ctx *gin.Context) (domain.Product, *response.Err) {
	var req request.ProductRequest

	isMultipart := strings.HasPrefix(ctx.ContentType(), "multipart/form-data")
	if isMultipart {
		if err := ctx.ShouldBind(&req); err != nil {
			return domain.Product{}, response.ErrBadRequest(err)
		}
	} else {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			return domain.Product{}, response.ErrBadRequest(err)
		}
	}

	if err := req.Validate(); err != nil {
		return domain.Product{}, response.ErrBadRequest(err)
	}

	price, err := req.ParsePrice()
	if err != nil {
		return domain.Product{}, response.ErrBadRequest(err)
	}

	var image *string
	if isMultipart {
		file, err := ctx.FormFile("image")
		if err == nil {
			name, saveErr := h.saveImage(ctx, file)
			if saveErr != nil {
				saveErr = fmt.Errorf("v1.bindProduct -> h.saveImage -> %w", saveErr)

				return domain.Product{}, response.ErrInternalServerError(saveErr)
			}
			image = &name
		}
	}
	if image == nil && req.Image != "" {
		image = &req.Image
	}

	return domain.Product{
		Name:     req.Name,
		Price:    price,
		Stock:    req.Stock,
		Category: req.Category,
		Image:    image,
	}, nil
}

// saveImage stores the upload under a generated name so client-supplied
// filenames never touch the filesystem.
func (h *ProductHandler) saveImage(ctx *gin.Context, file *multipart.FileHeader) (string, error) {
	name := uuid.NewString() + filepath.Ext(file.Filename)

	if err := ctx.SaveUploadedFile(file, filepath.Join(h.conf.UploadsDir, name)); err != nil {
		return "", err
	}

	return name, nil
}
