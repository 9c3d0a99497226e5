package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"aura/internal/domain"
	"aura/internal/service"
)

// Admin product handlers

type productReq struct {
	Name        string   `json:"name"`
	Price       int64    `json:"price"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Sizes       []string `json:"sizes"`
	Colors      []string `json:"colors"`
	Images      []string `json:"images"`
	Featured    bool     `json:"featured"`
	Popularity  int64    `json:"popularity"`
}

// bindProduct принимает JSON либо multipart-форму. В multipart-варианте
// приложенные файлы сначала уходят в хранилище изображений, и только
// потом их URL добавляются к уже имеющимся ссылкам
func (s *Server) bindProduct(c *gin.Context) (domain.Product, bool) {
	if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		var req productReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return domain.Product{}, false
		}
		return domain.Product{
			Name:        req.Name,
			Price:       req.Price,
			Description: req.Description,
			Category:    domain.Category(req.Category),
			Sizes:       req.Sizes,
			Colors:      req.Colors,
			Images:      req.Images,
			Featured:    req.Featured,
			Popularity:  req.Popularity,
		}, true
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form"})
		return domain.Product{}, false
	}
	price, _ := strconv.ParseInt(c.PostForm("price"), 10, 64)
	popularity, _ := strconv.ParseInt(c.PostForm("popularity"), 10, 64)
	p := domain.Product{
		Name:        c.PostForm("name"),
		Price:       price,
		Description: c.PostForm("description"),
		Category:    domain.Category(c.PostForm("category")),
		Sizes:       form.Value["sizes"],
		Colors:      form.Value["colors"],
		Images:      form.Value["images"],
		Featured:    c.PostForm("featured") == "true",
		Popularity:  popularity,
	}
	// upload first, merge after
	for _, fh := range form.File["photos"] {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable attachment"})
			return domain.Product{}, false
		}
		url, err := s.deps.Images.Upload(c, fh.Filename, f)
		f.Close()
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "image upload failed"})
			return domain.Product{}, false
		}
		p.Images = append(p.Images, url)
	}
	return p, true
}

// @Summary List products (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Product
// @Router /admin/products [get]
func (s *Server) adminListProducts(c *gin.Context) {
	s.listProducts(c)
}

// @Summary Create product
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body productReq true "Product"
// @Success 201 {object} domain.Product
// @Failure 400 {object} map[string]string
// @Router /admin/products [post]
func (s *Server) adminCreateProduct(c *gin.Context) {
	p, ok := s.bindProduct(c)
	if !ok {
		return
	}
	created, err := s.deps.Catalog.Create(c, p)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary Update product
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param input body productReq true "Product"
// @Success 200 {object} domain.Product
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/products/{id} [put]
func (s *Server) adminUpdateProduct(c *gin.Context) {
	p, ok := s.bindProduct(c)
	if !ok {
		return
	}
	p.ID = c.Param("id")
	updated, err := s.deps.Catalog.Update(c, p)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// @Summary Delete product
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /admin/products/{id} [delete]
func (s *Server) adminDeleteProduct(c *gin.Context) {
	if err := s.deps.Catalog.Delete(c, c.Param("id")); err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// Admin order handlers

// @Summary List orders, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Order
// @Router /admin/orders [get]
func (s *Server) adminListOrders(c *gin.Context) {
	list, err := s.deps.Orders.List(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

type orderUpdateReq struct {
	CustomerInfo domain.CustomerInfo `json:"customer_info"`
	Items        string              `json:"items"`
	Total        int64               `json:"total"`
	Status       string              `json:"status"`
}

// @Summary Edit order fields
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param input body orderUpdateReq true "Order"
// @Success 200 {object} domain.Order
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/orders/{id} [put]
func (s *Server) adminUpdateOrder(c *gin.Context) {
	var req orderUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	o, err := s.deps.Orders.Update(c, domain.Order{
		ID:           c.Param("id"),
		CustomerInfo: req.CustomerInfo,
		Items:        req.Items,
		Total:        req.Total,
		Status:       domain.OrderStatus(req.Status),
	})
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, o)
}

type statusReq struct {
	Status string `json:"status" binding:"required"`
}

// @Summary Set order status
// @Description Any status can be set from any status
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param input body statusReq true "Status"
// @Success 200 {object} domain.Order
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/orders/{id}/status [patch]
func (s *Server) adminSetOrderStatus(c *gin.Context) {
	var req statusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	o, err := s.deps.Orders.SetStatus(c, c.Param("id"), domain.OrderStatus(req.Status))
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, o)
}

// @Summary Delete order
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /admin/orders/{id} [delete]
func (s *Server) adminDeleteOrder(c *gin.Context) {
	if err := s.deps.Orders.Delete(c, c.Param("id")); err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// Admin customer handlers

// @Summary List customers (orders grouped by phone)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.Customer
// @Router /admin/customers [get]
func (s *Server) adminListCustomers(c *gin.Context) {
	list, err := s.deps.Customers.List(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Edit customer info across all their orders
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param phone path string true "Customer phone"
// @Param input body service.CustomerUpdate true "Fields"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/customers/{phone} [put]
func (s *Server) adminUpdateCustomer(c *gin.Context) {
	var req service.CustomerUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if err := s.deps.Customers.Update(c, c.Param("phone"), req); err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete a customer (removes every order with the phone)
// @Tags admin
// @Security BearerAuth
// @Param phone path string true "Customer phone"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /admin/customers/{phone} [delete]
func (s *Server) adminDeleteCustomer(c *gin.Context) {
	if err := s.deps.Customers.Delete(c, c.Param("phone")); err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
