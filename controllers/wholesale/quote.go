package wholesaleControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Shalom-Shobowale/adunniTradingHub/mailer"
	"github.com/Shalom-Shobowale/adunniTradingHub/models"
)

type QuoteInput struct {
	CompanyName       string `json:"company_name" binding:"required"`
	Email             string `json:"email" binding:"required,email"`
	Phone             string `json:"phone"`
	EstimatedQuantity int    `json:"estimated_quantity" binding:"required,min=1"`
	Message           string `json:"message"`
}

// POST /wholesale/quote
//
// The quote is persisted first; the admin notification and requester
// acknowledgement go out on a goroutine afterwards. Email failure is logged
// and does not fail the request.
func SubmitQuote(db *gorm.DB, mail *mailer.Mailer, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input QuoteInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		quote := models.QuoteRequest{
			CompanyName:       input.CompanyName,
			Email:             input.Email,
			Phone:             input.Phone,
			EstimatedQuantity: input.EstimatedQuantity,
			Message:           input.Message,
			CreatedAt:         time.Now(),
		}

		if err := db.Create(&quote).Error; err != nil {
			log.WithError(err).Error("failed to store quote request")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit quote request"})
			return
		}

		go func(quote models.QuoteRequest) {
			if err := mail.SendQuoteNotification(quote); err != nil {
				log.WithError(err).WithField("quote_id", quote.ID).
					Error("failed to notify admin of quote request")
			}
			if err := mail.SendQuoteAcknowledgement(quote); err != nil {
				log.WithError(err).WithField("quote_id", quote.ID).
					Error("failed to acknowledge quote request")
			}
		}(quote)

		c.JSON(http.StatusCreated, gin.H{"message": "Quote request received", "quote_id": quote.ID})
	}
}
