package helpers

import (
	"github.com/sails-app/sails-api/libs/go/db"
	"github.com/sails-app/sails-api/libs/go/types/business"
)

// OrdersFromExposureRows maps order rows onto the fields the nexus engine reads.
func OrdersFromExposureRows(rows []db.ListOrdersForExposureRow) []business.Order {
	orders := make([]business.Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, business.Order{
			StateCode:   NullableTextToString(row.ShippingState),
			CountryCode: NullableTextToString(row.ShippingCountry),
			OrderDate:   TimestamptzToTime(row.OrderDate),
			TotalAmount: NumericToDecimal(row.TotalAmount),
			Status:      row.Status,
		})
	}
	return orders
}
