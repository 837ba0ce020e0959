package handlers

import (
	"context"
	"log"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"backend/internal/payment"
	"backend/internal/validate"
)

var PayRules = []validate.Rule{
	validate.Required("product", "Product is Required"),
	validate.Required("token", "Token is Required"),
}

type payRequest struct {
	Product struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	} `json:"product"`
	Token struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"token"`
}

// Pay submits a tokenized card charge to the gateway and returns the charge
// result verbatim. Gateway failures surface as a structured 502 response
// rather than being swallowed.
func Pay(gateway payment.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/payments/pay"

		var req payRequest
		if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
			respondError(c, http.StatusBadRequest, route, "Invalid JSON Body")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()

		// round rather than truncate: 499.99 charges as 500, not 499
		charge, err := gateway.Charge(ctx, payment.ChargeRequest{
			TokenID:     req.Token.ID,
			Email:       req.Token.Email,
			Amount:      int64(math.Round(req.Product.Price)),
			Description: req.Product.Name,
		})
		if err != nil {
			log.Println("[PAYMENT] [ERROR] charge failed:", err)
			respondError(c, http.StatusBadGateway, route, "Payment Failed")
			return
		}

		log.Println("[PAYMENT] [INFO] charge succeeded:", charge.ID)
		c.JSON(http.StatusOK, charge)
	}
}
