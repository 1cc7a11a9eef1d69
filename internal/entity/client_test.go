package entity_test

import (
	"testing"
	"time"

	"github.com/forexel/PrivetManagerApp/internal/entity"
)

func TestProjectStatus(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()

	for _, tt := range []struct {
		name              string
		prior             entity.ClientStatus
		contract          *entity.Contract
		hasPendingInvoice bool
		want              entity.ClientStatus
	}{
		{
			name:  "no contract keeps prior status",
			prior: entity.ClientStatusInVerification,
			want:  entity.ClientStatusInVerification,
		},
		{
			name:     "generated but unsigned",
			prior:    entity.ClientStatusInVerification,
			contract: &entity.Contract{},
			want:     entity.ClientStatusAwaitingContract,
		},
		{
			name:              "signed with pending invoice",
			prior:             entity.ClientStatusAwaitingContract,
			contract:          &entity.Contract{SignedAt: &now},
			hasPendingInvoice: true,
			want:              entity.ClientStatusAwaitingPayment,
		},
		{
			name:     "signed and nothing owed",
			prior:    entity.ClientStatusAwaitingContract,
			contract: &entity.Contract{SignedAt: &now},
			want:     entity.ClientStatusProcessed,
		},
		{
			name:              "payment confirmed wins over pending invoice",
			prior:             entity.ClientStatusAwaitingPayment,
			contract:          &entity.Contract{SignedAt: &now, PaymentConfirmedAt: &now},
			hasPendingInvoice: true,
			want:              entity.ClientStatusProcessed,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := entity.ProjectStatus(tt.prior, tt.contract, tt.hasPendingInvoice)
			if got != tt.want {
				t.Errorf("ProjectStatus() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContract_OTPPending(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	number := "ИВ-250810-01"
	code := "4311"

	for _, tt := range []struct {
		name     string
		contract entity.Contract
		want     bool
	}{
		{
			name: "code sent and not signed",
			contract: entity.Contract{
				ContractNumber: &number,
				OTPCode:        &code,
				OTPSentAt:      &now,
			},
			want: true,
		},
		{
			name: "signed clears pending",
			contract: entity.Contract{
				ContractNumber: &number,
				OTPSentAt:      &now,
				SignedAt:       &now,
			},
			want: false,
		},
		{
			name:     "nothing sent",
			contract: entity.Contract{ContractNumber: &number},
			want:     false,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.contract.OTPPending(); got != tt.want {
				t.Errorf("OTPPending() = %v, want %v", got, tt.want)
			}
		})
	}
}
