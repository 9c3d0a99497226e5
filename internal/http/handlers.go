package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"aura/internal/cart"
	"aura/internal/domain"
	"aura/internal/email"
	"aura/internal/favorites"
	"aura/internal/repository"
	"aura/internal/service"
	"aura/internal/storage"
)

// Deps все зависимости сервера; собираются в main и передаются явно
type Deps struct {
	Catalog   *service.CatalogService
	Orders    *service.OrderService
	Customers *service.CustomerService
	Checkout  *service.CheckoutService
	Contact   *service.ContactService
	Carts     *cart.Store
	Favorites *favorites.Registry
	Images    storage.ImageStore
	Auth      AuthConfig
}

type Server struct {
	engine *gin.Engine
	deps   Deps
}

func NewServer(deps Deps) *Server {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	s := &Server{engine: r, deps: deps}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	// Swagger UI
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := s.engine.Group("/api/v1")
	{
		v1.GET("/products", s.listProducts)
		v1.GET("/products/:id", s.getProduct)

		v1.GET("/cart", s.getCart)
		v1.POST("/cart/items", s.addCartItem)
		v1.PATCH("/cart/items/:id", s.updateCartItem)
		v1.DELETE("/cart/items/:id", s.removeCartItem)
		v1.DELETE("/cart", s.clearCart)

		v1.GET("/checkout", s.checkoutSummary)
		v1.POST("/checkout", s.submitCheckout)
		v1.POST("/contact", s.submitContact)

		v1.GET("/favorites", s.listFavorites)
		v1.PUT("/favorites/:id", s.addFavorite)
		v1.DELETE("/favorites/:id", s.removeFavorite)

		admin := v1.Group("/admin")
		admin.POST("/login", s.login)
		guarded := admin.Group("")
		guarded.Use(s.authRequired())
		{
			guarded.GET("/products", s.adminListProducts)
			guarded.POST("/products", s.adminCreateProduct)
			guarded.PUT("/products/:id", s.adminUpdateProduct)
			guarded.DELETE("/products/:id", s.adminDeleteProduct)

			guarded.GET("/orders", s.adminListOrders)
			guarded.PUT("/orders/:id", s.adminUpdateOrder)
			guarded.PATCH("/orders/:id/status", s.adminSetOrderStatus)
			guarded.DELETE("/orders/:id", s.adminDeleteOrder)

			guarded.GET("/customers", s.adminListCustomers)
			guarded.PUT("/customers/:phone", s.adminUpdateCustomer)
			guarded.DELETE("/customers/:phone", s.adminDeleteCustomer)
		}
	}
}

const sessionCookie = "aura_session"

// sessionID достаёт id сессии из cookie, при первом обращении выдаёт новый
func (s *Server) sessionID(c *gin.Context) string {
	if v, err := c.Cookie(sessionCookie); err == nil && v != "" {
		return v
	}
	id := uuid.NewString()
	c.SetCookie(sessionCookie, id, 60*60*24*30, "/", "", false, true)
	return id
}

// Catalog handlers

// @Summary List products
// @Tags catalog
// @Produce json
// @Param category query string false "men | women | children"
// @Param featured query bool false "Featured only"
// @Param sort query string false "newest | popularity"
// @Success 200 {array} domain.Product
// @Failure 400 {object} map[string]string
// @Router /products [get]
func (s *Server) listProducts(c *gin.Context) {
	var f repository.ProductFilter
	if v := c.Query("category"); v != "" {
		if !domain.ValidCategory(domain.Category(v)) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
			return
		}
		f.Category = domain.Category(v)
	}
	if v := c.Query("featured"); v == "true" || v == "1" {
		f.FeaturedOnly = true
	}
	if v := c.Query("sort"); v == string(repository.SortPopularity) {
		f.Sort = repository.SortPopularity
	}
	list, err := s.deps.Catalog.List(c, f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Get product by id
// @Tags catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} domain.Product
// @Failure 404 {object} map[string]string
// @Router /products/{id} [get]
func (s *Server) getProduct(c *gin.Context) {
	p, err := s.deps.Catalog.GetByID(c, c.Param("id"))
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// Cart handlers

// @Summary Current cart
// @Tags cart
// @Produce json
// @Success 200 {object} cart.State
// @Router /cart [get]
func (s *Server) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, s.deps.Carts.Get(s.sessionID(c)))
}

type addCartItemReq struct {
	ProductID string `json:"product_id" binding:"required"`
	Size      string `json:"size" binding:"required"`
	Color     string `json:"color" binding:"required"`
}

// @Summary Add a product variant to the cart
// @Tags cart
// @Accept json
// @Produce json
// @Param input body addCartItemReq true "Variant"
// @Success 200 {object} cart.State
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items [post]
func (s *Server) addCartItem(c *gin.Context) {
	var req addCartItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	p, err := s.deps.Catalog.GetByID(c, req.ProductID)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	state := s.deps.Carts.Dispatch(s.sessionID(c), cart.Action{
		Type:    cart.ActionAdd,
		Product: *p,
		Size:    req.Size,
		Color:   req.Color,
	})
	c.JSON(http.StatusOK, state)
}

type updateCartItemReq struct {
	Quantity int64  `json:"quantity" binding:"required"`
	Size     string `json:"size"`
	Color    string `json:"color"`
}

// @Summary Update a cart line (quantity, or full variant)
// @Tags cart
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param input body updateCartItemReq true "Update"
// @Success 200 {object} cart.State
// @Failure 400 {object} map[string]string
// @Router /cart/items/{id} [patch]
func (s *Server) updateCartItem(c *gin.Context) {
	var req updateCartItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	a := cart.Action{
		Type:      cart.ActionUpdateQuantity,
		ProductID: c.Param("id"),
		Quantity:  req.Quantity,
	}
	if req.Size != "" || req.Color != "" {
		a.Type = cart.ActionUpdateItem
		a.Size = req.Size
		a.Color = req.Color
	}
	c.JSON(http.StatusOK, s.deps.Carts.Dispatch(s.sessionID(c), a))
}

// @Summary Remove a cart line
// @Tags cart
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} cart.State
// @Router /cart/items/{id} [delete]
func (s *Server) removeCartItem(c *gin.Context) {
	state := s.deps.Carts.Dispatch(s.sessionID(c), cart.Action{
		Type:      cart.ActionRemove,
		ProductID: c.Param("id"),
	})
	c.JSON(http.StatusOK, state)
}

// @Summary Clear the cart
// @Tags cart
// @Produce json
// @Success 200 {object} cart.State
// @Router /cart [delete]
func (s *Server) clearCart(c *gin.Context) {
	sid := s.sessionID(c)
	c.JSON(http.StatusOK, s.deps.Carts.Dispatch(sid, cart.Action{Type: cart.ActionClear}))
}

// Checkout handlers

// @Summary Checkout summary
// @Description Redirects to the home route when the cart is empty
// @Tags checkout
// @Produce json
// @Success 200 {object} cart.State
// @Success 303
// @Router /checkout [get]
func (s *Server) checkoutSummary(c *gin.Context) {
	state := s.deps.Carts.Get(s.sessionID(c))
	if len(state.Items) == 0 {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	c.JSON(http.StatusOK, state)
}

type checkoutReq struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	District string `json:"district"`
	Comment  string `json:"comment"`
}

// @Summary Submit the order
// @Tags checkout
// @Accept json
// @Produce json
// @Param input body checkoutReq true "Customer info"
// @Success 200 {object} service.Confirmation
// @Success 303
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /checkout [post]
func (s *Server) submitCheckout(c *gin.Context) {
	var req checkoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	conf, err := s.deps.Checkout.Submit(c, s.sessionID(c), domain.CustomerInfo{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		District: req.District,
		Comment:  req.Comment,
	})
	if errors.Is(err, service.ErrEmptyCart) {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, conf)
}

type contactReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// @Summary Send a contact message
// @Tags contact
// @Accept json
// @Produce json
// @Param input body contactReq true "Message"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /contact [post]
func (s *Server) submitContact(c *gin.Context) {
	var req contactReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	err := s.deps.Contact.Send(c, email.ContactEmail{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// Favorites handlers

// @Summary List favorite product ids
// @Tags favorites
// @Produce json
// @Success 200 {array} string
// @Router /favorites [get]
func (s *Server) listFavorites(c *gin.Context) {
	c.JSON(http.StatusOK, s.deps.Favorites.List(s.sessionID(c)))
}

// @Summary Mark a product as favorite
// @Tags favorites
// @Param id path string true "Product ID"
// @Success 204
// @Router /favorites/{id} [put]
func (s *Server) addFavorite(c *gin.Context) {
	s.deps.Favorites.Add(s.sessionID(c), c.Param("id"))
	c.Status(http.StatusNoContent)
}

// @Summary Unmark a favorite
// @Tags favorites
// @Param id path string true "Product ID"
// @Success 204
// @Router /favorites/{id} [delete]
func (s *Server) removeFavorite(c *gin.Context) {
	s.deps.Favorites.Remove(s.sessionID(c), c.Param("id"))
	c.Status(http.StatusNoContent)
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrNoSizes),
		errors.Is(err, service.ErrNoColors),
		errors.Is(err, service.ErrBadPrice),
		errors.Is(err, service.ErrBadStatus),
		errors.Is(err, service.ErrMissingName),
		errors.Is(err, service.ErrMissingPhone),
		errors.Is(err, service.ErrMissingDistrict),
		errors.Is(err, service.ErrMissingMessage):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrEmailSend):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
