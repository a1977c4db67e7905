package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	cart "github.com/prasetyoadi/warung-assistant/internal/cart"
	repo "github.com/prasetyoadi/warung-assistant/internal/repo"
)

const cartCookieName = "cart_session"

// cartSession returns the shopper's session ID, minting a cookie on first
// contact. Carts live only in the session store and expire with it.
func cartSession(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(cartCookieName); err == nil && c.Value != "" {
		return c.Value
	}

	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	id := hex.EncodeToString(buf)

	http.SetCookie(w, &http.Cookie{
		Name:     cartCookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(cart.SessionTTL.Seconds()),
		HttpOnly: true,
	})
	return id
}

func writeCart(w http.ResponseWriter, c cart.Cart) {
	items := c.Items
	if items == nil {
		items = []cart.Item{}
	}
	_ = writeJSON(w, http.StatusOK, CartResponse{
		Items: items,
		Total: c.Total(),
		Count: c.Count(),
	})
}

// GetCartHandler godoc
// @Summary Read the session cart
// @Tags cart
// @Produce json
// @Success 200 {object} CartResponse
// @Failure 500 {object} ErrorResponse
// @Router /cart [get]
func GetCartHandler(w http.ResponseWriter, r *http.Request) {
	session := cartSession(w, r)
	c, err := cartStore.Get(r.Context(), session)
	if err != nil {
		log.Printf("cart read failed: %v", err)
		writeError(w, http.StatusInternalServerError, "could not read cart")
		return
	}
	writeCart(w, c)
}

// AddCartItemHandler godoc
// @Summary Add a product to the session cart
// @Tags cart
// @Accept json
// @Produce json
// @Param item body CartItemRequest true "Product and quantity"
// @Success 200 {object} CartResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /cart/items [post]
func AddCartItemHandler(w http.ResponseWriter, r *http.Request) {
	var req CartItemRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	product, err := productRepo.GetByID(req.ProductID)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "could not fetch product")
		return
	}

	session := cartSession(w, r)
	c, err := cartStore.Get(r.Context(), session)
	if err != nil {
		log.Printf("cart read failed: %v", err)
		writeError(w, http.StatusInternalServerError, "could not read cart")
		return
	}

	c.Add(cart.Item{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Qty:       req.Qty,
	})

	if err := cartStore.Save(r.Context(), session, c); err != nil {
		log.Printf("cart save failed: %v", err)
		writeError(w, http.StatusInternalServerError, "could not save cart")
		return
	}
	writeCart(w, c)
}

// adjustCart runs one mutation against the session cart and saves it.
func adjustCart(w http.ResponseWriter, r *http.Request, mutate func(*cart.Cart, int)) {
	productID, err := strconv.Atoi(chi.URLParam(r, "productId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	session := cartSession(w, r)
	c, err := cartStore.Get(r.Context(), session)
	if err != nil {
		log.Printf("cart read failed: %v", err)
		writeError(w, http.StatusInternalServerError, "could not read cart")
		return
	}

	mutate(&c, productID)

	if err := cartStore.Save(r.Context(), session, c); err != nil {
		log.Printf("cart save failed: %v", err)
		writeError(w, http.StatusInternalServerError, "could not save cart")
		return
	}
	writeCart(w, c)
}

// IncrementCartItemHandler godoc
// @Summary Increase a cart line's quantity by one
// @Tags cart
// @Produce json
// @Param productId path int true "Product ID"
// @Success 200 {object} CartResponse
// @Failure 400 {object} ErrorResponse
// @Router /cart/items/{productId}/increment [post]
func IncrementCartItemHandler(w http.ResponseWriter, r *http.Request) {
	adjustCart(w, r, (*cart.Cart).Increment)
}

// DecrementCartItemHandler godoc
// @Summary Decrease a cart line's quantity by one, removing it at zero
// @Tags cart
// @Produce json
// @Param productId path int true "Product ID"
// @Success 200 {object} CartResponse
// @Failure 400 {object} ErrorResponse
// @Router /cart/items/{productId}/decrement [post]
func DecrementCartItemHandler(w http.ResponseWriter, r *http.Request) {
	adjustCart(w, r, (*cart.Cart).Decrement)
}

// RemoveCartItemHandler godoc
// @Summary Remove a product line from the cart
// @Tags cart
// @Produce json
// @Param productId path int true "Product ID"
// @Success 200 {object} CartResponse
// @Failure 400 {object} ErrorResponse
// @Router /cart/items/{productId} [delete]
func RemoveCartItemHandler(w http.ResponseWriter, r *http.Request) {
	adjustCart(w, r, (*cart.Cart).Remove)
}

// ClearCartHandler godoc
// @Summary Empty the session cart
// @Tags cart
// @Produce json
// @Success 200 {object} CartResponse
// @Router /cart [delete]
func ClearCartHandler(w http.ResponseWriter, r *http.Request) {
	session := cartSession(w, r)
	if err := cartStore.Delete(r.Context(), session); err != nil {
		log.Printf("cart clear failed: %v", err)
		writeError(w, http.StatusInternalServerError, "could not clear cart")
		return
	}
	writeCart(w, cart.Cart{})
}
