package order

import (
	"time"

	"github.com/Adityavardhan394/chatbot-restarunt/internal/domain"
)

// stagesFor returns the fixed progression for an order type. Offsets are
// relative to order confirmation; the branch is chosen once at checkout and
// never changes for the order's lifetime.
func stagesFor(orderType domain.OrderType) []domain.StageRecord {
	switch orderType {
	case domain.OrderTypeTakeaway:
		return []domain.StageRecord{
			{Status: domain.StatusConfirmed, Message: "Order confirmed! Restaurant is preparing your food for pickup.", Icon: "✅", Offset: 0},
			{Status: domain.StatusPreparing, Message: "Your delicious meal is being prepared with care.", Icon: "👨‍🍳", Offset: 2 * time.Second},
			{Status: domain.StatusPacking, Message: "Food is ready! Being packed for takeaway.", Icon: "📦", Offset: 6 * time.Second},
			{Status: domain.StatusReadyForPickup, Message: "Order packed and ready for pickup! Come collect your food.", Icon: "🛍️", Offset: 10 * time.Second},
			{Status: domain.StatusCollected, Message: "Order collected! Enjoy your meal! ❤️", Icon: "🎉", Offset: 15 * time.Second},
		}
	case domain.OrderTypeDineIn:
		return []domain.StageRecord{
			{Status: domain.StatusConfirmed, Message: "Order confirmed! We're preparing your meal for your table.", Icon: "✅", Offset: 0},
			{Status: domain.StatusPreparing, Message: "Your delicious meal is being prepared with care.", Icon: "👨‍🍳", Offset: 3 * time.Second},
			{Status: domain.StatusReady, Message: "Food is ready! Being served to your table.", Icon: "🍽️", Offset: 8 * time.Second},
			{Status: domain.StatusServed, Message: "Order served to your table! Enjoy your meal! ❤️", Icon: "🎉", Offset: 12 * time.Second},
		}
	default:
		return []domain.StageRecord{
			{Status: domain.StatusConfirmed, Message: "Order confirmed! Restaurant is preparing your food.", Icon: "✅", Offset: 0},
			{Status: domain.StatusPreparing, Message: "Your delicious meal is being prepared with care.", Icon: "👨‍🍳", Offset: 3 * time.Second},
			{Status: domain.StatusReady, Message: "Food is ready! Delivery partner is picking up your order.", Icon: "🍽️", Offset: 8 * time.Second},
			{Status: domain.StatusPickedUp, Message: "Order picked up! Your delivery is on the way.", Icon: "🛵", Offset: 12 * time.Second},
			{Status: domain.StatusOutForDelivery, Message: "Out for delivery! Your food will arrive shortly.", Icon: "🚚", Offset: 18 * time.Second},
			{Status: domain.StatusDelivered, Message: "Order delivered! Enjoy your meal! ❤️", Icon: "🎉", Offset: 25 * time.Second},
		}
	}
}

func estimateFor(orderType domain.OrderType) string {
	switch orderType {
	case domain.OrderTypeTakeaway:
		return "15-20 minutes"
	case domain.OrderTypeDineIn:
		return "20-25 minutes"
	default:
		return "25-35 minutes"
	}
}
