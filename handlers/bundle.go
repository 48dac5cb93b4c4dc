package handlers

import (
	"qserve/services/booking"
	"qserve/services/chat"
	"qserve/services/favorite"
	"qserve/services/moneyrequest"
	"qserve/services/qpay"
	"qserve/services/review"
	"qserve/services/storage"
	"qserve/services/transaction"
	"qserve/services/user"
	"qserve/services/wallet"
)

// HandlerBundle groups all endpoint handlers and the services they call.
// It is assembled once in main and handed to the router.
type HandlerBundle struct {
	Users        user.UserService
	Wallets      wallet.WalletService
	QPay         qpay.QPayService
	Bookings     booking.BookingService
	Requests     moneyrequest.MoneyRequestService
	Transactions transaction.TransactionService
	Chat         chat.ChatService
	Reviews      review.ReviewService
	Favorites    favorite.FavoriteService
	Storage      storage.StorageService
}
