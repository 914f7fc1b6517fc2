package service

import (
	"errors"
	"fmt"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

/* =========================================================
   Midtrans Client
========================================================= */

var SnapClient snap.Client

// InitMidtrans harus dipanggil saat bootstrap app.
// useProduction=true untuk Production, false untuk Sandbox.
func InitMidtrans(serverKey string, useProduction bool) {
	if useProduction {
		SnapClient.New(serverKey, midtrans.Production)
	} else {
		SnapClient.New(serverKey, midtrans.Sandbox)
	}
}

/* =========================================================
   Snap Token untuk pembayaran tagihan online
========================================================= */

type SnapCustomer struct {
	FirstName string
	Email     string
	Phone     string
}

// GenerateDuesSnapToken membuat token Snap untuk membayar total tagihan
// tertunggak seorang penghuni. orderID harus unik per transaksi.
func GenerateDuesSnapToken(orderID string, grossAmount float64, cust SnapCustomer) (string, string, error) {
	if orderID == "" {
		return "", "", errors.New("order id kosong")
	}
	if grossAmount <= 0 {
		return "", "", errors.New("jumlah transaksi harus lebih dari 0")
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: int64(grossAmount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: cust.FirstName,
			Email: cust.Email,
			Phone: cust.Phone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       orderID,
				Price:    int64(grossAmount),
				Qty:      1,
				Name:     fmt.Sprintf("Pembayaran tagihan asrama (%s)", cust.FirstName),
				Category: "Hostel Dues",
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}
