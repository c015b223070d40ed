package handler

import (
	"net/http"
	"net/url"
	"strconv"

	"catalogo/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /cart のセッションカートAPI
type CartHandler struct {
	cartUC  *usecase.CartUsecase
	orderUC *usecase.OrderUsecase
}

// DI
func NewCartHandler(cartUC *usecase.CartUsecase, orderUC *usecase.OrderUsecase) *CartHandler {
	return &CartHandler{
		cartUC:  cartUC,
		orderUC: orderUC,
	}
}

func (h *CartHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/cart", h.get)
	g.POST("/cart/items", h.addItem)
	g.PATCH("/cart/items/:productID", h.updateItem)
	g.DELETE("/cart/items/:productID", h.removeItem)
	g.DELETE("/cart", h.empty)
	g.POST("/cart/drawer", h.drawer)
	g.POST("/cart/customer-names", h.addCustomerName)
	g.DELETE("/cart/customer-names/:name", h.removeCustomerName)
	g.POST("/cart/checkout", h.checkout)
}

func (h *CartHandler) get(c echo.Context) error {
	out, err := h.cartUC.GetCart(c.Request().Context(), tenantCatalogID(c), cartSessionID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type addItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

func (h *CartHandler) addItem(c echo.Context) error {
	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	out, err := h.cartUC.AddItem(c.Request().Context(), tenantCatalogID(c), cartSessionID(c), usecase.AddCartInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type updateItemRequest struct {
	Quantity int64 `json:"quantity"`
}

func (h *CartHandler) updateItem(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("productID"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid product_id"})
	}

	var req updateItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.cartUC.UpdateItem(c.Request().Context(), tenantCatalogID(c), cartSessionID(c), productID, usecase.UpdateCartItemInput{
		Quantity: req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) removeItem(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("productID"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid product_id"})
	}

	out, err := h.cartUC.RemoveItem(c.Request().Context(), tenantCatalogID(c), cartSessionID(c), productID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) empty(c echo.Context) error {
	out, err := h.cartUC.Empty(c.Request().Context(), tenantCatalogID(c), cartSessionID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type drawerRequest struct {
	Action string `json:"action"` // open / close / toggle
}

func (h *CartHandler) drawer(c echo.Context) error {
	var req drawerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.cartUC.SetDrawer(c.Request().Context(), tenantCatalogID(c), cartSessionID(c), req.Action)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type customerNameRequest struct {
	Name string `json:"name"`
}

func (h *CartHandler) addCustomerName(c echo.Context) error {
	var req customerNameRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.cartUC.AddCustomerName(c.Request().Context(), tenantCatalogID(c), cartSessionID(c), req.Name)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) removeCustomerName(c echo.Context) error {
	name, err := url.PathUnescape(c.Param("name"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid name"})
	}

	out, err := h.cartUC.RemoveCustomerName(c.Request().Context(), tenantCatalogID(c), cartSessionID(c), name)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type checkoutRequest struct {
	CustomerName string `json:"customer_name"`
}

func (h *CartHandler) checkout(c echo.Context) error {
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.orderUC.Checkout(c.Request().Context(), tenantCatalogID(c), cartSessionID(c), usecase.CheckoutInput{
		CustomerName: req.CustomerName,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
