package service

import "mfo-offers-api/internal/models"

// SampleOffers returns the curated seed set used by the seed endpoint.
func SampleOffers() []models.Offer {
	return []models.Offer{
		{
			Name:         "Быстрые Деньги",
			APR:          29.9,
			MinAmount:    1000,
			MaxAmount:    50000,
			TermMinDays:  7,
			TermMaxDays:  30,
			ApprovalRate: floatPtr(85.0),
			Rating:       floatPtr(4.6),
			Description:  strPtr("Мгновенное одобрение и выдача на карту за 5 минут."),
			Link:         strPtr("https://example.com/fast"),
			Tags:         []string{"быстро", "онлайн", "на карту"},
		},
		{
			Name:         "Надёжный Займ",
			APR:          24.5,
			MinAmount:    3000,
			MaxAmount:    70000,
			TermMinDays:  10,
			TermMaxDays:  60,
			ApprovalRate: floatPtr(78.0),
			Rating:       floatPtr(4.4),
			Description:  strPtr("Без справок и поручителей, прозрачные условия."),
			Link:         strPtr("https://example.com/reliable"),
			Tags:         []string{"без справок", "прозрачно"},
		},
		{
			Name:         "Займер",
			APR:          19.9,
			MinAmount:    5000,
			MaxAmount:    100000,
			TermMinDays:  15,
			TermMaxDays:  90,
			ApprovalRate: floatPtr(70.0),
			Rating:       floatPtr(4.8),
			Description:  strPtr("Лучшие ставки для постоянных клиентов."),
			Link:         strPtr("https://example.com/zaimer"),
			Tags:         []string{"низкая ставка", "лояльность"},
		},
		{
			Name:         "РубльGo",
			APR:          34.9,
			MinAmount:    1000,
			MaxAmount:    30000,
			TermMinDays:  7,
			TermMaxDays:  45,
			ApprovalRate: floatPtr(90.0),
			Rating:       floatPtr(4.2),
			Description:  strPtr("Высокий процент одобрения, первый займ под 0%."),
			Link:         strPtr("https://example.com/rublgo"),
			Tags:         []string{"0%", "высокое одобрение"},
		},
	}
}

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }
