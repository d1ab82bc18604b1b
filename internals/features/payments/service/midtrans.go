// internals/features/payments/service/midtrans.go
package service

import (
	"log"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

var SnapClient snap.Client

var configured bool

// InitMidtrans menyiapkan Snap client sandbox; tanpa server key fitur checkout
// otomatis nonaktif.
func InitMidtrans(serverKey string) {
	if serverKey == "" {
		log.Println("[WARN] MIDTRANS_SERVER_KEY kosong, checkout dinonaktifkan")
		configured = false
		return
	}
	SnapClient.New(serverKey, midtrans.Sandbox)
	configured = true
	log.Println("✅ Midtrans Snap client siap (sandbox)")
}

func Configured() bool {
	return configured
}

// GenerateSnapToken membuat transaksi Snap dan mengembalikan token + redirect URL.
func GenerateSnapToken(orderID string, grossAmt int64, name, email string) (string, string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: grossAmt,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: name,
			Email: email,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}
