// file: internals/helpers/receipt.go
package helper

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewReceiptNumber membuat nomor kwitansi collision-resistant:
// RCPT-YYYYMMDD-XXXXXXXX (fragment UUID, uppercase). Keunikan tetap
// dijaga unique index di student_fee_payments.
func NewReceiptNumber(at time.Time) string {
	frag := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return fmt.Sprintf("RCPT-%s-%s", at.Format("20060102"), frag)
}

// NewOrderID untuk transaksi gateway (midtrans) - satu order per snap token.
func NewOrderID(prefix string) string {
	frag := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:12]
	return fmt.Sprintf("%s-%s", prefix, frag)
}
