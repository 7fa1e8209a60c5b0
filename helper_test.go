package portfel

// Shared fixtures for the codec and valuation tests.

func sampleShare() Asset {
	return NewShare("Сбербанк", "SBER", 285.45, 1.23, 10)
}

func sampleOFZBond() Asset {
	return NewBond("ОФЗ 26238", "SU26238RMFS4", 98.5, -2.4, 2)
}

func sampleCurrency() Asset {
	a := NewCurrency("Доллар США", "USD", 92.5, 5.1, 100)
	a.IconURL = "https://cdn.example.org/flags/us.svg"
	return a
}

func sampleCrypto() Asset {
	a := NewCrypto("Bitcoin", "BTC", 5850000, 42.7, 1)
	a.IconURL = "https://assets.example.com/coins/btc/icon/64/color.png"
	return a
}

func sampleGold() Asset {
	return NewMetal("Золото", "XAU", 7450.3, 12.8, 5)
}

func sampleDeposit() Asset {
	return NewDeposit("Вклад в банке", 100000, 12.5, 6)
}

func sampleRealEstate() Asset {
	return NewRealEstate("Квартира", 8500000, Residential, 4.5, "Москва, ул. Ленина, д. 1")
}

func sampleBusiness() Asset {
	return NewBusiness("Кофейня", 2000000, SmallBusiness, 150000, 18.5)
}

func samplePortfolio() []Asset {
	return []Asset{
		sampleShare(),
		sampleOFZBond(),
		sampleCurrency(),
		sampleCrypto(),
		sampleGold(),
		sampleDeposit(),
		sampleRealEstate(),
		sampleBusiness(),
	}
}
