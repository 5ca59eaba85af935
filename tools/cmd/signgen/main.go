// goldshop-gateway/tools/cmd/signgen/main.go
//
// Computes the callback signature for a given order/payment pair so the
// verify endpoint can be exercised by hand:
//
//	go run ./tools/cmd/signgen -order order_1 -payment pay_1 -secret s
package main

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
)

func main() {
	orderID := flag.String("order", "", "gateway order id")
	paymentID := flag.String("payment", "", "gateway payment id")
	secret := flag.String("secret", os.Getenv("RAZORPAY_KEY_SECRET"), "key secret used to sign (default $RAZORPAY_KEY_SECRET)")
	asJSON := flag.Bool("json", false, "print a ready-to-POST verify body instead of the bare signature")
	flag.Parse()

	if *orderID == "" || *paymentID == "" || *secret == "" {
		log.Fatal("usage: signgen -order <id> -payment <id> -secret <secret> [-json]")
	}

	mac := hmac.New(sha256.New, []byte(*secret))
	mac.Write([]byte(*orderID + "|" + *paymentID))
	sig := hex.EncodeToString(mac.Sum(nil))

	if !*asJSON {
		fmt.Println(sig)
		return
	}
	b, _ := json.MarshalIndent(map[string]string{
		"razorpay_order_id":   *orderID,
		"razorpay_payment_id": *paymentID,
		"razorpay_signature":  sig,
	}, "", "  ")
	fmt.Println(string(b))
}
