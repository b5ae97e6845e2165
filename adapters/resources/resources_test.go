package resources

import (
	"testing"

	"github.com/jsamuelsen/go-asaas/internal/mocks"
	"github.com/jsamuelsen/go-asaas/internal/platform/logging"
	"github.com/jsamuelsen/go-asaas/internal/platform/metrics"
)

const testEndpoint = "https://sandbox.asaas.com/api/v3"

func testConfig(t *testing.T) (Config, *mocks.MockAdapter) {
	t.Helper()

	adapter := mocks.NewMockAdapter(t)

	return Config{
		Adapter:  adapter,
		Endpoint: testEndpoint + "/",
		Logger:   logging.Discard(),
		Metrics:  metrics.NewRecorder(),
	}, adapter
}

const customerJSON = `{
	"object": "customer",
	"id": "cus_000005219613",
	"dateCreated": "2026-05-14",
	"name": "Marcelo Almeida",
	"email": "marcelo.almeida@gmail.com",
	"phone": "4738010919",
	"mobilePhone": "4799376637",
	"address": "Av. Paulista",
	"addressNumber": "150",
	"complement": "Sala 201",
	"province": "Centro",
	"postalCode": "01310-000",
	"cpfCnpj": "24971563792",
	"personType": "FISICA",
	"deleted": false,
	"additionalEmails": "marcelo.almeida2@gmail.com",
	"externalReference": "12987382",
	"notificationDisabled": false,
	"city": 15873,
	"cityName": "São Paulo",
	"state": "SP",
	"country": "Brasil",
	"observations": "ótimo pagador"
}`

const paymentJSON = `{
	"object": "payment",
	"id": "pay_080225913252",
	"dateCreated": "2026-06-10",
	"customer": "cus_000005219613",
	"billingType": "CREDIT_CARD",
	"value": 129.9,
	"netValue": 124.7,
	"originalValue": null,
	"interestValue": null,
	"description": "Pedido 056984",
	"status": "CONFIRMED",
	"dueDate": "2026-06-15",
	"originalDueDate": "2026-06-15",
	"paymentDate": null,
	"clientPaymentDate": "2026-06-11",
	"installmentNumber": null,
	"invoiceUrl": "https://www.asaas.com/i/080225913252",
	"bankSlipUrl": null,
	"invoiceNumber": "00005101",
	"externalReference": "056984",
	"deleted": false,
	"creditCard": {
		"creditCardNumber": "8829",
		"creditCardBrand": "MASTERCARD",
		"creditCardToken": "a75a1d98-c52d-4a6b-a413-71e00b193c99"
	}
}`
