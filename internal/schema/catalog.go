package schema

// Shared source → label maps reused by several production endpoints.
var (
	planFields = map[string]string{
		"dogalgaz":   "Doğalgaz",
		"barajli":    "Barajlı",
		"linyit":     "Linyit",
		"akarsu":     "Akarsu",
		"ithalKomur": "İthal Kömür",
		"ruzgar":     "Rüzgar",
		"fuelOil":    "Fuel Oil",
		"jeotermal":  "Jeo Termal",
		"tasKomur":   "Taş Kömür",
		"biokutle":   "Biokütle",
		"nafta":      "Nafta",
		"diger":      "Diğer",
		"toplam":     "Toplam",
	}
	planColumns = []string{"Tarih", "Saat", "Doğalgaz", "Barajlı", "Linyit", "Akarsu", "İthal Kömür", "Rüzgar",
		"Fuel Oil", "Jeo Termal", "Taş Kömür", "Biokütle", "Nafta", "Diğer", "Toplam"}

	generationFields = map[string]string{
		"naturalGas":     "Doğalgaz",
		"dammedHydro":    "Barajlı",
		"lignite":        "Linyit",
		"river":          "Akarsu",
		"importCoal":     "İthal Kömür",
		"wind":           "Rüzgar",
		"sun":            "Güneş",
		"fueloil":        "Fuel Oil",
		"geothermal":     "Jeo Termal",
		"asphaltiteCoal": "Asfaltit Kömür",
		"blackCoal":      "Taş Kömür",
		"biomass":        "Biokütle",
		"naphta":         "Nafta",
		"lng":            "LNG",
		"importExport":   "Uluslararası",
		"total":          "Toplam",
	}
	generationColumns = []string{"Tarih", "Saat", "Doğalgaz", "Barajlı", "Linyit", "Akarsu", "İthal Kömür",
		"Rüzgar", "Güneş", "Fuel Oil", "Jeo Termal", "Asfaltit Kömür", "Taş Kömür", "Biokütle", "Nafta", "LNG",
		"Uluslararası", "Toplam"}

	organizationFields = map[string]string{
		"organizationId":        "Id",
		"organizationName":      "Adı",
		"organizationETSOCode":  "EIC Kodu",
		"organizationShortName": "Kısa Adı",
		"organizationStatus":    "Durum",
	}
	organizationColumns = []string{"Id", "Adı", "EIC Kodu", "Kısa Adı", "Durum"}

	plantFields = map[string]string{
		"id":        "Id",
		"name":      "Adı",
		"eic":       "EIC Kodu",
		"shortName": "Kısa Adı",
	}
	plantColumns = []string{"Id", "Adı", "EIC Kodu", "Kısa Adı"}

	unitFields = map[string]string{
		"id":   "Id",
		"name": "Adı",
		"eic":  "EIC Kodu",
	}
	unitColumns = []string{"Id", "Adı", "EIC Kodu"}

	directionLabels = map[string]string{
		"IN_BALANCE":     "Dengede",
		"ENERGY_SURPLUS": "Enerji Fazlası",
		"ENERGY_DEFICIT": "Enerji Açığı",
	}
)

var catalog = []Endpoint{
	// market: day-ahead (GÖP)
	{
		Name: "ptf", Title: "Day-ahead market clearing price (PTF)", Category: "market",
		Path: "market/day-ahead-mcp", ArrayKey: "dayAheadMCPList",
		TimestampField: "date", Hour: HourFromTimestamp,
		Renames:       map[string]string{"price": "PTF"},
		OutputColumns: []string{"Tarih", "Saat", "PTF"},
		Params:        ParamsRange,
	},
	{
		Name: "gop-hacim", Title: "Day-ahead market matched volumes", Category: "market",
		Path: "market/day-ahead-market-volume", ArrayKey: "dayAheadMarketVolumeList",
		TimestampField: "date", Hour: HourFromTimestamp,
		Renames: map[string]string{
			"matchedBids":           "Talep Eşleşme Miktarı",
			"volume":                "Eşleşme Miktarı",
			"matchedOffers":         "Arz Eşleşme Miktarı",
			"priceIndependentBid":   "Fiyattan Bağımsız Talep Miktarı",
			"priceIndependentOffer": "Fiyattan Bağımsız Arz Miktarı",
			"quantityOfAsk":         "Maksimum Talep Miktarı",
			"quantityOfBid":         "Maksimum Arz Miktarı",
			"blockBid":              "Arz Blok Teklif Eşleşme Miktarı",
			"blockOffer":            "Talep Blok Teklif Eşleşme Miktarı",
		},
		OutputColumns: []string{"Tarih", "Saat", "Talep Eşleşme Miktarı", "Eşleşme Miktarı", "Arz Eşleşme Miktarı",
			"Fiyattan Bağımsız Talep Miktarı", "Fiyattan Bağımsız Arz Miktarı", "Maksimum Talep Miktarı",
			"Maksimum Arz Miktarı", "Arz Blok Teklif Eşleşme Miktarı", "Talep Blok Teklif Eşleşme Miktarı"},
		Params: ParamsRange,
	},
	{
		Name: "gop-hacim-organizasyon", Title: "Day-ahead matched volumes of one organization", Category: "market",
		Path: "market/day-ahead-market-volume", ArrayKey: "dayAheadMarketVolumeList",
		TimestampField: "date", Hour: HourFromTimestamp,
		Renames: map[string]string{
			"matchedBids":   "Talep Eşleşme Miktarı",
			"matchedOffers": "Arz Eşleşme Miktarı",
		},
		OutputColumns: []string{"Tarih", "Saat", "Talep Eşleşme Miktarı", "Arz Eşleşme Miktarı"},
		Params:        ParamsRangeEntity, EntityParam: "eic",
	},
	{
		Name: "gop-islem-hacmi", Title: "Day-ahead market trade volume", Category: "market",
		Path: "market/day-ahead-market-trade-volume", ArrayKey: "dayAheadMarketTradeVolumeList",
		TimestampField: "date", Hour: HourFromTimestamp,
		Renames:       map[string]string{"volumeOfBid": "Talep İşlem Hacmi", "volumeOfAsk": "Arz İşlem Hacmi"},
		OutputColumns: []string{"Tarih", "Saat", "Talep İşlem Hacmi", "Arz İşlem Hacmi"},
		Params:        ParamsRange,
	},
	{
		Name: "gop-blok-miktari", Title: "Day-ahead block bid amounts", Category: "market",
		Path: "market/amount-of-block", ArrayKey: "amountOfBlockList",
		TimestampField: "date", Hour: HourFromTimestamp,
		Renames: map[string]string{
			"amountOfPurchasingTowardsBlock":      "Talep Blok Teklif Miktarı",
			"amountOfPurchasingTowardsMatchBlock": "Eşleşen Talep Blok Teklif Miktarı",
			"amountOfSalesTowardsBlock":           "Arz Blok Teklif Miktarı",
			"amountOfSalesTowardsMatchBlock":      "Eşleşen Arz Blok Teklif Miktarı",
		},
		OutputColumns: []string{"Tarih", "Saat", "Talep Blok Teklif Miktarı", "Eşleşen Talep Blok Teklif Miktarı",
			"Arz Blok Teklif Miktarı", "Eşleşen Arz Blok Teklif Miktarı"},
		Params: ParamsRange,
	},
	{
		Name: "gop-fark-tutari", Title: "Day-ahead difference funds (daily)", Category: "market",
		Path: "market/day-ahead-diff-funds", ArrayKey: "diffFundList",
		TimestampField: "date", Hour: HourNone,
		Renames: map[string]string{
			"originatingFromBids":     "Talep",
			"originatingFromOffers":   "Arz",
			"originatingFromRounding": "Yuvarlama",
			"total":                   "Toplam",
		},
		OutputColumns: []string{"Tarih", "Talep", "Arz", "Yuvarlama", "Toplam"},
		Params:        ParamsRange,
	},
	{
		Name: "kptf", Title: "Interim day-ahead clearing price (KPTF)", Category: "market",
		Path: "market/day-ahead-interim-mcp", ArrayKey: "interimMCPList",
		TimestampField: "date", Hour: HourFromTimestamp,
		Renames:       map[string]string{"marketTradePrice": "KPTF"},
		OutputColumns: []string{"Saat", "KPTF"},
		Params:        ParamsDate, DefaultDayOffset: 1,
	},
	{
		Name: "arz-talep-egrisi", Title: "Day-ahead supply/demand curve points", Category: "market",
		Path: "market/supply-demand-curve", ArrayKey: "supplyDemandCurves",
		TimestampField: "date", Hour: HourFromTimestamp,
		Renames:       map[string]string{"demand": "Talep", "price": "Fiyat", "supply": "Arz"},
		OutputColumns: []string{"Saat", "Talep", "Fiyat", "Arz"},
		Params:        ParamsDate,
	},

	// market: balancing (DGP) and imbalance
	{
		Name: "smf", Title: "System marginal price (SMF) and system direction", Category: "market",
		Path: "market/smp", ArrayKey: "smpList",
		TimestampField: "date", Hour: HourFromTimestamp,
		Renames:       map[string]string{"price": "SMF", "smpDirection": "Sistem Yönü"},
		OutputColumns: []string{"Tarih", "Saat", "SMF", "Sistem Yönü"},
		Params:        ParamsRange,
	},
	{
		Name: "dgp-hacim", Title: "Balancing market up/down regulation instructions", Category: "market",
		Path: "market/bpm-order-summary", ArrayKey: "bpmorderSummaryList",
		TimestampField: "date", Hour: HourFromTimestamp,
		Renames: map[string]string{
			"net":                     "Net",
			"upRegulationZeroCoded":   "YAL (0)",
			"upRegulationOneCoded":    "YAL (1)",
			"upRegulationTwoCoded":    "YAL (2)",
			"upRegulationDelivered":   "Teslim Edilen YAL",
			"downRegulationZeroCoded": "YAT (0)",
			"downRegulationOneCoded":  "YAT (1)",
			"downRegulationTwoCoded":  "YAT (2)",
			"downRegulationDelivered": "Teslim Edilen YAT",
			"direction":               "Sistem Yönü",
		},
		OutputColumns: []string{"Tarih", "Saat", "Net", "YAL (0)", "YAL (1)", "YAL (2)", "Teslim Edilen YAL",
			"YAT (0)", "YAT (1)", "YAT (2)", "Teslim Edilen YAT", "Sistem Yönü"},
		ValueMaps: map[string]map[string]string{"Sistem Yönü": directionLabels},
		Params:    ParamsRange,
	},
	{
		Name: "dengesizlik", Title: "Hourly energy imbalance quantities and amounts", Category: "market",
		Path: "market/energy-imbalance-hourly", ArrayKey: "energyImbalances",
		TimestampField: "date", Hour: HourFromTimestamp,
		Renames: map[string]string{
			"positiveImbalance":       "Pozitif Dengesizlik Miktarı (MWh)",
			"negativeImbalance":       "Negatif Dengesizlik Miktarı (MWh)",
			"positiveImbalanceIncome": "Pozitif Dengesizlik Tutarı (TL)",
			"negativeImbalanceIncome": "Negatif Dengesizlik Tutarı (TL)",
		},
		OutputColumns: []string{"Tarih", "Saat", "Pozitif Dengesizlik Miktarı (MWh)", "Negatif Dengesizlik Miktarı (MWh)",
			"Pozitif Dengesizlik Tutarı (TL)", "Negatif Dengesizlik Tutarı (TL)"},
		Params: ParamsRange,
	},
	{
		Name: "dsg-listesi", Title: "Balance-responsible groups", Category: "market",
		Path: "market/dsg-imbalance-quantity-orgaization-list", ArrayKey: "orgList",
		Renames:       organizationFields,
		OutputColumns: organizationColumns,
		Params:        ParamsRange,
	},
	{
		Name: "dsg-dengesizlik-miktari", Title: "Monthly imbalance of one balance-responsible group", Category: "market",
		Path: "market/dsg-imbalance-quantity", ArrayKey: "imbalanceQuantityList",
		TimestampField: "date", Hour: HourNone,
		Renames: map[string]string{
			"positiveImbalanceQuantity": "Pozitif Dengesizlik Miktarı (MWh)",
			"negativImbalanceQuantity":  "Negatif Dengesizlik Miktarı (MWh)",
		},
		OutputColumns: []string{"Tarih", "Pozitif Dengesizlik Miktarı (MWh)", "Negatif Dengesizlik Miktarı (MWh)"},
		Params:        ParamsRangeID, EntityParam: "organizationId",
	},

	// market: bilateral contracts (İA)
	{
		Name: "ia-satis", Title: "Bilateral contract sell quantities", Category: "market",
		Path: "market/bilateral-contract-sell", ArrayKey: "bilateralContractSellList",
		TimestampField: "date", Hour: HourFromTimestamp,
		Renames:       map[string]string{"quantity": "Arz Miktarı"},
		OutputColumns: []string{"Tarih", "Saat", "Arz Miktarı"},
		Params:        ParamsRangeEntity, EntityParam: "eic",
	},
	{
		Name: "ia-alis", Title: "Bilateral contract buy quantities", Category: "market",
		Path: "market/bilateral-contract-buy", ArrayKey: "bilateralContractBuyList",
		TimestampField: "date", Hour: HourFromTimestamp,
		Renames:       map[string]string{"quantity": "Talep Miktarı"},
		OutputColumns: []string{"Tarih", "Saat", "Talep Miktarı"},
		Params:        ParamsRangeEntity, EntityParam: "eic",
	},

	// market: intraday (GİP)
	{
		Name: "gip-aof", Title: "Intraday weighted average price (AOF)", Category: "market",
		Path: "market/intra-day-aof", ArrayKey: "idmAofList",
		TimestampField: "date", Hour: HourFromTimestamp,
		Renames:       map[string]string{"price": "AOF"},
		OutputColumns: []string{"Tarih", "Saat", "AOF"},
		Params:        ParamsRange,
	},
	{
		Name: "gip-hacim", Title: "Intraday matched quantities", Category: "market",
		Path: "market/intra-day-volume", ArrayKey: "matchDetails",
		TimestampField: "date", Hour: HourFromTimestamp,
		Renames: map[string]string{
			"blockMatchQuantity":  "Blok Eşleşme Miktarı",
			"hourlyMatchQuantity": "Saatlik Eşleşme Miktarı",
		},
		OutputColumns: []string{"Tarih", "Saat", "Blok Eşleşme Miktarı", "Saatlik Eşleşme Miktarı"},
		Params:        ParamsRange,
	},
	{
		Name: "gip-islem-hacmi", Title: "Intraday trade value", Category: "market",
		Path: "market/intra-day-income", ArrayKey: "incomes",
		TimestampField: "date", Hour: HourFromTimestamp,
		Renames:       map[string]string{"income": "İşlem Hacmi"},
		OutputColumns: []string{"Tarih", "Saat", "İşlem Hacmi"},
		Params:        ParamsRange,
	},
	{
		Name: "gip-teklif-miktarlari", Title: "Intraday offered quantities", Category: "market",
		Path: "market/intra-day-quantity", ArrayKey: "offerQuantities",
		TimestampField: "date", Hour: HourFromTimestamp,
		Renames: map[string]string{
			"hourlyPurchaseQuantity": "Saatlik Talep Miktarı",
			"blockPurchaseQuantity":  "Blok Talep Miktarı",
			"hourlySaleQuantity":     "Saatlik Arz Miktarı",
			"blockSaleQuantity":      "Blok Arz Miktarı",
		},
		OutputColumns: []string{"Tarih", "Saat", "Saatlik Talep Miktarı", "Blok Talep Miktarı",
			"Saatlik Arz Miktarı", "Blok Arz Miktarı"},
		Params: ParamsRange,
	},

	// market: ancillary services and totals
	{
		Name: "pfk-miktar", Title: "Primary frequency control obligation", Category: "market",
		Path: "market/pfc-amount", ArrayKey: "frequencyReservePriceList",
		TimestampField: "date", Hour: HourFromTimestamp,
		Renames:       map[string]string{"totalAmount": "PFK Yükümlülük (MWh)"},
		OutputColumns: []string{"Tarih", "Saat", "PFK Yükümlülük (MWh)"},
		Params:        ParamsRange,
	},
	{
		Name: "sfk-miktar", Title: "Secondary frequency control obligation", Category: "market",
		Path: "market/sfc-amount", ArrayKey: "frequencyReservePriceList",
		TimestampField: "date", Hour: HourFromTimestamp,
		Renames:       map[string]string{"totalAmount": "SFK Yükümlülük (MWh)"},
		OutputColumns: []string{"Tarih", "Saat", "SFK Yükümlülük (MWh)"},
		Params:        ParamsRange,
	},
	{
		Name: "pfk-fiyat", Title: "Primary frequency reserve price", Category: "market",
		Path: "market/pfc-price", ArrayKey: "frequencyReservePriceList",
		TimestampField: "date", Hour: HourFromTimestamp,
		Renames:       map[string]string{"price": "PFK Fiyat (TL/MWh)"},
		OutputColumns: []string{"Tarih", "Saat", "PFK Fiyat (TL/MWh)"},
		Params:        ParamsRange,
	},
	{
		Name: "sfk-fiyat", Title: "Secondary frequency reserve price", Category: "market",
		Path: "market/sfc-price", ArrayKey: "frequencyReservePriceList",
		TimestampField: "date", Hour: HourFromTimestamp,
		Renames:       map[string]string{"price": "SFK Fiyat (TL/MWh)"},
		OutputColumns: []string{"Tarih", "Saat", "SFK Fiyat (TL/MWh)"},
		Params:        ParamsRange,
	},
	{
		Name: "piyasa-hacmi", Title: "Market volumes by period (daily, monthly, yearly)", Category: "market",
		Path: "market/market-volume", ArrayKey: "marketVolumeList",
		TimestampField: "date", Hour: HourNone,
		Renames: map[string]string{
			"bilateralContractAmount":   "İA Miktarı",
			"dayAheadMarketVolume":      "GÖP Miktarı",
			"intradayVolume":            "GİP Miktarı",
			"balancedPowerMarketVolume": "DGP Miktarı",
		},
		OutputColumns: []string{"Tarih", "İA Miktarı", "GÖP Miktarı", "GİP Miktarı", "DGP Miktarı"},
		Params:        ParamsRangePeriod, EntityParam: "period",
	},

	// production
	{
		Name: "organizasyonlar", Title: "Organizations that may submit KGÜP", Category: "production",
		Path: "production/dpp-organization", ArrayKey: "organizations",
		Renames:       organizationFields,
		OutputColumns: organizationColumns,
		Params:        ParamsNone,
	},
	{
		Name: "kgup", Title: "Finalized day-ahead production plan (KGÜP) by source", Category: "production",
		Path: "production/dpp", ArrayKey: "dppList",
		TimestampField: "tarih", Hour: HourFromTimestamp,
		Renames:       planFields,
		OutputColumns: planColumns,
		Params:        ParamsRangeEntity, EntityParam: "organizationEIC",
		Static:        map[string]string{"uevcbEIC": ""},
	},
	{
		Name: "eak", Title: "Available installed capacity (EAK) by source", Category: "production",
		Path: "production/aic", ArrayKey: "aicList",
		TimestampField: "tarih", Hour: HourFromTimestamp,
		Renames:       planFields,
		OutputColumns: planColumns,
		Params:        ParamsRangeEntity, EntityParam: "organizationEIC",
		Static:        map[string]string{"uevcbEIC": ""},
	},
	{
		Name: "kudup", Title: "Bilateral-agreement-based production plan (KUDÜP)", Category: "production",
		Path: "production/sbfgp", ArrayKey: "dppList",
		TimestampField: "tarih", Hour: HourFromTimestamp,
		Renames:       planFields,
		OutputColumns: planColumns,
		Params:        ParamsRangeID, EntityParam: "organizationId",
	},
	{
		Name: "uevm", Title: "Settlement-based injection quantities (UEVM) by source", Category: "production",
		Path: "production/ssv-categorized", ArrayKey: "ssvList",
		TimestampField: "date", Hour: HourFromTimestamp,
		Renames: map[string]string{
			"naturalGas":    "Doğalgaz",
			"dam":           "Barajlı",
			"lignite":       "Linyit",
			"river":         "Akarsu",
			"importedCoal":  "İthal Kömür",
			"wind":          "Rüzgar",
			"fueloil":       "Fuel Oil",
			"geothermal":    "Jeo Termal",
			"asphaltite":    "Asfaltit Kömür",
			"stonecoal":     "Taş Kömür",
			"biomass":       "Biokütle",
			"naphtha":       "Nafta",
			"lng":           "LNG",
			"international": "Uluslararası",
			"other":         "Diğer",
			"total":         "Toplam",
		},
		OutputColumns: []string{"Tarih", "Saat", "Doğalgaz", "Barajlı", "Linyit", "Akarsu", "İthal Kömür", "Rüzgar",
			"Fuel Oil", "Jeo Termal", "Asfaltit Kömür", "Taş Kömür", "Biokütle", "Nafta", "LNG", "Uluslararası",
			"Diğer", "Toplam"},
		Params: ParamsRange,
	},
	{
		Name: "gerceklesen-uretim", Title: "Real-time generation by source", Category: "production",
		Path: "production/real-time-generation", ArrayKey: "hourlyGenerations",
		TimestampField: "date", Hour: HourFromTimestamp,
		Renames:       generationFields,
		OutputColumns: generationColumns,
		Params:        ParamsRange,
	},
	{
		Name: "gerceklesen-uretim-santral", Title: "Real-time generation of one power plant", Category: "production",
		Path: "production/real-time-generation_with_powerplant", ArrayKey: "hourlyGenerations",
		TimestampField: "date", Hour: HourFromTimestamp,
		Renames:       generationFields,
		OutputColumns: generationColumns,
		Params:        ParamsRangeID, EntityParam: "powerPlantId",
	},
	{
		Name: "santraller", Title: "Power plants valid at a date", Category: "production",
		Path: "production/power-plant", ArrayKey: "powerPlantList",
		Renames:       plantFields,
		OutputColumns: plantColumns,
		Params:        ParamsDate,
	},
	{
		Name: "gercek-zamanli-santraller", Title: "Power plants publishing real-time generation", Category: "production",
		Path: "production/real-time-generation-power-plant-list", ArrayKey: "powerPlantList",
		Renames:       plantFields,
		OutputColumns: plantColumns,
		Params:        ParamsNone,
	},
	{
		Name: "santral-uevcb", Title: "Settlement units (UEVÇB) of one power plant at a date", Category: "production",
		Path: "production/uevcb", ArrayKey: "uevcbList",
		Renames:       unitFields,
		OutputColumns: unitColumns,
		Params:        ParamsDateID, EntityParam: "powerPlantId",
	},
	{
		Name: "organizasyon-uevcb", Title: "Settlement units (UEVÇB) of one KGÜP organization", Category: "production",
		Path: "production/dpp-injection-unit-name", ArrayKey: "injectionUnitNames",
		Renames:       unitFields,
		OutputColumns: unitColumns,
		Params:        ParamsEntity, EntityParam: "organizationEIC",
	},
	{
		Name: "yekdem-santraller", Title: "Licensed renewable support (YEKDEM) plants at a date", Category: "production",
		Path: "production/renewable-sm-licensed-power-plant-list", ArrayKey: "powerPlantList",
		Renames:       plantFields,
		OutputColumns: plantColumns,
		Params:        ParamsDate,
	},
	{
		Name: "yekdem-lisansli-uevm", Title: "Licensed renewable (YEKDEM) injection quantities by source", Category: "production",
		Path: "production/renewable-sm-licensed-injection-quantity", ArrayKey: "renewableSMProductionList",
		TimestampField: "date", Hour: HourFromTimestamp,
		Renames: map[string]string{
			"wind":        "Rüzgar",
			"geothermal":  "Jeotermal",
			"reservoir":   "Rezervuarlı",
			"canalType":   "Kanal Tipi",
			"riverType":   "Nehir Tipi",
			"landfillGas": "Çöp Gazı",
			"biogas":      "Biyogaz",
			"sun":         "Güneş",
			"biomass":     "Biyokütle",
			"others":      "Diğer",
			"total":       "Toplam",
		},
		OutputColumns: []string{"Tarih", "Saat", "Rüzgar", "Jeotermal", "Rezervuarlı", "Kanal Tipi", "Nehir Tipi",
			"Çöp Gazı", "Biyogaz", "Güneş", "Biyokütle", "Diğer", "Toplam"},
		Params: ParamsRange,
	},
	{
		Name: "yekdem-birim-maliyet", Title: "YEKDEM unit cost by settlement period and version", Category: "production",
		Path: "production/renewable-sm-unit-cost", ArrayKey: "renewableSMUnitCostList",
		Renames: map[string]string{
			"id.donem":    "Dönem",
			"id.versiyon": "Versiyon",
			"unitCost":    "Birim Maliyet (TL)",
		},
		OutputColumns: []string{"Dönem", "Versiyon", "Birim Maliyet (TL)"},
		DateColumns:   []string{"Dönem", "Versiyon"},
		Params:        ParamsRange,
	},
	{
		Name: "yekdem-donemsel-maliyet", Title: "YEKDEM costs and income by settlement period", Category: "production",
		Path: "production/renewables-support", ArrayKey: "renewablesSupports",
		Renames: map[string]string{
			"period":              "Dönem",
			"unitCost":            "Birim Maliyet (TL)",
			"licenseExemptCost":   "Lisanssız Toplam Maliyet (TL)",
			"reneablesCost":       "Lisanlı Toplam Maliyet (TL)",
			"renewablesTotalCost": "Toplam Maliyet (TL)",
			"portfolioIncome":     "Toplam Gelir (TL)",
		},
		OutputColumns: []string{"Dönem", "Birim Maliyet (TL)", "Lisanssız Toplam Maliyet (TL)",
			"Lisanlı Toplam Maliyet (TL)", "Toplam Maliyet (TL)", "Toplam Gelir (TL)"},
		DateColumns: []string{"Dönem"},
		Params:      ParamsRange,
	},
	{
		Name: "kurulu-guc", Title: "Installed capacity at a date", Category: "production",
		Path: "production/installed-capacity", ArrayKey: "installedCapacityList",
		Renames:       map[string]string{"capacity": "Kurulu Güç"},
		OutputColumns: []string{"Kurulu Güç"},
		Params:        ParamsDate,
	},

	// consumption
	{
		Name: "gerceklesen-tuketim", Title: "Real-time consumption", Category: "consumption",
		Path: "consumption/real-time-consumption", ArrayKey: "hourlyConsumptions",
		TimestampField: "date", Hour: HourFromTimestamp,
		Renames:       map[string]string{"consumption": "Tüketim"},
		OutputColumns: []string{"Tarih", "Saat", "Tüketim"},
		Params:        ParamsRange,
	},
	{
		Name: "uecm", Title: "Settlement-based withdrawal quantity (UEÇM)", Category: "consumption",
		Path: "consumption/swv", ArrayKey: "swvList",
		TimestampField: "date", Hour: HourFromTimestamp,
		Renames:       map[string]string{"swv": "UEÇM"},
		OutputColumns: []string{"Tarih", "Saat", "UEÇM"},
		Params:        ParamsRange,
	},
	{
		Name: "tuketim-tahmini", Title: "Load estimation plan", Category: "consumption",
		Path: "consumption/load-estimation-plan", ArrayKey: "loadEstimationPlanList",
		TimestampField: "date", Hour: HourFromTimestamp,
		Renames:       map[string]string{"lep": "Tüketim"},
		OutputColumns: []string{"Tarih", "Saat", "Tüketim"},
		Params:        ParamsRange,
	},

	{
		Name: "dagitim-bolgeleri", Title: "Distribution regions", Category: "consumption",
		Path: "consumption/distribution", ArrayKey: "distributionList",
		Renames:       map[string]string{"id": "Id", "name": "Dağıtım Şirket Adı"},
		OutputColumns: []string{"Id", "Dağıtım Şirket Adı"},
		Params:        ParamsNone,
	},
	{
		Name: "profil-abone-grubu", Title: "Subscriber profile groups of one distribution region at a date", Category: "consumption",
		Path: "consumption/subscriber-profile-group", ArrayKey: "subscriberProfileGroupList",
		Renames:       map[string]string{"id": "Id", "name": "Profil Adı"},
		OutputColumns: []string{"Id", "Profil Adı"},
		Params:        ParamsDateID, EntityParam: "distributionId",
	},

	// transmission
	{
		Name: "sifir-bakiye", Title: "Zero-balance adjustment amounts (daily)", Category: "transmission",
		Path: "transmission/zero-balance", ArrayKey: "zeroBalances",
		TimestampField: "date", Hour: HourNone,
		Renames: map[string]string{
			"zeroBalanceAdjustment": "Toplam",
			"downRegulation":        "YAT",
			"upRegulation":          "YAL",
			"manual":                "Manuel",
			"negativeImbalance":     "Enerji Dengesizliği Tutarı",
			"kupst":                 "KÜPST",
			"renewableImbalance":    "YEK Enerji Dengesizliği Tutarı",
		},
		OutputColumns: []string{"Tarih", "Toplam", "YAT", "YAL", "Manuel", "Enerji Dengesizliği Tutarı", "KÜPST",
			"YEK Enerji Dengesizliği Tutarı"},
		Params: ParamsRange,
	},
	{
		Name: "kisit-maliyeti", Title: "Congestion rent by city (order type via orderType: YAL, YAT, YAL_YAT)", Category: "transmission",
		Path: "transmission/congestion-rent", ArrayKey: "congestionRentList",
		Renames: map[string]string{
			"cityId":                   "Şehir Id",
			"cityName":                 "Şehir Adı",
			"mcpCost":                  "PTF Maliyeti",
			"smpCost":                  "SMF Maliyeti",
			"orderCount":               "Talimat Sayısı",
			"upRegulationOrderCount":   "YAL Talimat Miktarı",
			"downRegulationOrderCount": "YAT Talimat Miktarı",
			"totalOrderCount":          "Toplam Talimat Miktarı",
		},
		OutputColumns: []string{"Şehir Id", "Şehir Adı", "PTF Maliyeti", "SMF Maliyeti", "Talimat Sayısı",
			"YAL Talimat Miktarı", "YAT Talimat Miktarı", "Toplam Talimat Miktarı"},
		Params: ParamsRange,
		Static: map[string]string{"orderType": "YAL_YAT"},
	},
	{
		Name: "kayip-katsayisi", Title: "Transmission system loss factor", Category: "transmission",
		Path: "transmission/transmission-system-loss-factor", ArrayKey: "transmissionSystemLossFactorList",
		TimestampField: "date", Hour: HourFromTimestamp,
		Renames:       map[string]string{"firstVersionValue": "İlk Versiyon", "lastVersionValue": "Son Versiyon"},
		OutputColumns: []string{"Tarih", "Saat", "İlk Versiyon", "Son Versiyon"},
		Params:        ParamsRange,
	},

	// natural gas: spot market (STP)
	{
		Name: "stp-gunluk-fiyat", Title: "STP daily prices (GRF, GÖF, GİF, GEF, AOF)", Category: "gas",
		Path: "stp/daily-price", ArrayKey: "stpDailyPriceDtos",
		Renames: map[string]string{
			"gasDay":            "Gaz Günü",
			"contractName":      "Kontrat İsmi",
			"gasReferencePrice": "GRF",
			"dayAheadPrice":     "GÖF",
			"intraDayPrice":     "GİF",
			"dayAfterPrice":     "GEF",
			"weightedAverage":   "AOF",
		},
		OutputColumns: []string{"Gaz Günü", "Kontrat İsmi", "GRF", "GÖF", "GİF", "GEF", "AOF"},
		DateColumns:   []string{"Gaz Günü"},
		Params:        ParamsRange,
	},
	{
		Name: "stp-gunluk-hacim", Title: "STP daily matched quantities", Category: "gas",
		Path: "stp/matching-quantity", ArrayKey: "matchingDtos",
		Renames: map[string]string{
			"gasDay":                       "Gaz Günü",
			"contractName":                 "Kontrat İsmi",
			"intraDayMatchingQuantity":     "GİEM",
			"dayAfterMatchingQuantity":     "GEEM",
			"dayAheadMatchingQuantity":     "GÖEM",
			"gasReferenceMatchingQuantity": "GRFEM",
			"weeklyMatchingQuantity":       "HEM",
		},
		OutputColumns: []string{"Gaz Günü", "Kontrat İsmi", "GİEM", "GEEM", "GÖEM", "GRFEM", "HEM"},
		DateColumns:   []string{"Gaz Günü"},
		Params:        ParamsRange,
	},
	{
		Name: "stp-gunluk-islem-hacmi", Title: "STP daily trade value", Category: "gas",
		Path: "stp/trade-value", ArrayKey: "tradeValues",
		Renames: map[string]string{
			"gasDay":                 "Gaz Günü",
			"contractName":           "Kontrat İsmi",
			"intraDayTradeValue":     "GİİH",
			"dayAfterTradeValue":     "GEİH",
			"dayAheadTradeValue":     "GÖİH",
			"gasReferenceTradeValue": "GRFİH",
		},
		OutputColumns: []string{"Gaz Günü", "Kontrat İsmi", "GİİH", "GEİH", "GÖİH", "GRFİH"},
		DateColumns:   []string{"Gaz Günü"},
		Params:        ParamsRange,
	},
	{
		Name: "stp-haftalik-fiyat", Title: "STP weekly reference prices", Category: "gas",
		Path: "stp/stp-weekly-reference-price", ArrayKey: "weeklyRefPriceList",
		Renames: map[string]string{
			"week":           "Hafta",
			"weekdayPrice":   "HI",
			"weekendPrice":   "HS",
			"weekTotalPrice": "HT",
			"weeklyRefPrice": "HRF",
		},
		OutputColumns: []string{"Hafta", "HI", "HS", "HT", "HRF"},
		Params:        ParamsRange,
	},
	{
		Name: "stp-haftalik-hacim", Title: "STP weekly matched quantities", Category: "gas",
		Path: "stp/matching-quantity/stp-weekly-matching-quantity", ArrayKey: "stpWeeklyMatchList",
		Renames: map[string]string{
			"week":    "Hafta",
			"hiem":    "HİEM",
			"hsem":    "HSEM",
			"htem":    "HTEM",
			"emTotal": "Toplam",
		},
		OutputColumns: []string{"Hafta", "HİEM", "HSEM", "HTEM", "Toplam"},
		Params:        ParamsRange,
	},
	{
		Name: "stp-haftalik-islem-hacmi", Title: "STP weekly trade value", Category: "gas",
		Path: "stp/volume/stp-weekly-volume", ArrayKey: "stpWeeklyMatchList",
		Renames: map[string]string{
			"week":    "Hafta",
			"hiih":    "HİİH",
			"hsih":    "HSİH",
			"htih":    "HTİH",
			"ihTotal": "Toplam",
		},
		OutputColumns: []string{"Hafta", "HİİH", "HSİH", "HTİH", "Toplam"},
		Params:        ParamsRange,
	},
	{
		Name: "stp-dengeleme-gazi-fiyati", Title: "Balancing gas prices (DGF)", Category: "gas",
		Path: "stp/balancing-gas-price", ArrayKey: "prices",
		Renames: map[string]string{
			"gasDay":                      "Gaz Günü",
			"additionalBalancingPurchase": "İDAF",
			"additionalBalancingSale":     "İDSF",
			"balancingGasPurchase":        "DGAF",
			"balancingGasSale":            "DGSF",
			"finalAbp":                    "İDAF (Kesinleşmiş)",
			"finalAbs":                    "İDSF (Kesinleşmiş)",
			"finalBgp":                    "DGAF (Kesinleşmiş)",
			"finalBgs":                    "DGSF (Kesinleşmiş)",
		},
		OutputColumns: []string{"Gaz Günü", "İDAF", "İDSF", "DGAF", "DGSF", "İDAF (Kesinleşmiş)",
			"İDSF (Kesinleşmiş)", "DGAF (Kesinleşmiş)", "DGSF (Kesinleşmiş)"},
		DateColumns: []string{"Gaz Günü"},
		Params:      ParamsRange,
	},
	{
		Name: "stp-ilave-dengeleyici-1", Title: "Additional balancer code-1 (green) operations", Category: "gas",
		Path: "stp/greencode-operation", ArrayKey: "operations",
		Renames: map[string]string{
			"gasDay":          "Etki Ettiği Gaz Günü",
			"contractGasDay":  "Kontrat Gaz Günü",
			"transactionDate": "İşlem Tarihi",
			"contractName":    "Kontrat İsmi",
			"amount":          "Miktar",
			"weightedAverage": "AOF",
		},
		OutputColumns: []string{"Etki Ettiği Gaz Günü", "Kontrat Gaz Günü", "İşlem Tarihi", "Kontrat İsmi", "Miktar", "AOF"},
		DateColumns:   []string{"Etki Ettiği Gaz Günü", "Kontrat Gaz Günü", "İşlem Tarihi"},
		Params:        ParamsRange,
	},
	{
		Name: "stp-ilave-dengeleyici-2", Title: "Additional balancer code-2 (blue) operations", Category: "gas",
		Path: "stp/bluecode-operation", ArrayKey: "operations",
		Renames: map[string]string{
			"gasDay":          "Gaz Günü",
			"contractName":    "Kontrat İsmi",
			"amount":          "Miktar",
			"weightedAverage": "AOF",
		},
		OutputColumns: []string{"Gaz Günü", "Kontrat İsmi", "Miktar", "AOF"},
		DateColumns:   []string{"Gaz Günü"},
		Params:        ParamsRange,
	},
	{
		Name: "stp-ilave-dengeleyici-bildirimleri", Title: "Additional balancer notifications", Category: "gas",
		Path: "stp/additional-notification", ArrayKey: "additionalNotifications",
		TimestampField: "date", Hour: HourFromTimestamp,
		Renames:       map[string]string{"subjectTr": "Konu", "messageTr": "Açıklama"},
		OutputColumns: []string{"Tarih", "Saat", "Konu", "Açıklama"},
		Params:        ParamsRange,
	},
	{
		Name: "stp-dengesizlik", Title: "Gas imbalance and allowance quantities", Category: "gas",
		Path: "stp/allowance", ArrayKey: "allowances",
		Renames: map[string]string{
			"gasDay":                      "Gaz Günü",
			"type":                        "Veri Türü",
			"inputDataPyhsical":           "Fiziki Giriş (Sm3)",
			"outputDataPyhsical":          "Fiziki Çıkış (Sm3)",
			"inputDataVirtual":            "Sanal Giriş (Sm3)",
			"outputDataVirtual":           "Sanal Çıkış (Sm3)",
			"systemDirection":             "Sistem Yönü",
			"negativeImbalance":           "Negatif Dengesizlik Miktarı (Sm3)",
			"positiveImbalance":           "Pozitif Dengesizlik Miktarı (Sm3)",
			"negativeImbalanceTradeValue": "Negatif Dengesizlik Tutarı (TL)",
			"positiveImbalanceTradeValue": "Pozitif Dengesizlik Tutarı (TL)",
		},
		OutputColumns: []string{"Gaz Günü", "Veri Türü", "Fiziki Giriş (Sm3)", "Fiziki Çıkış (Sm3)",
			"Sanal Giriş (Sm3)", "Sanal Çıkış (Sm3)", "Sistem Yönü", "Negatif Dengesizlik Miktarı (Sm3)",
			"Pozitif Dengesizlik Miktarı (Sm3)", "Negatif Dengesizlik Tutarı (TL)", "Pozitif Dengesizlik Tutarı (TL)"},
		DateColumns: []string{"Gaz Günü"},
		Params:      ParamsRange,
	},
	{
		Name: "stp-bast", Title: "Gas zero-balance adjustment amount (BAST)", Category: "gas",
		Path: "stp/zero-balance", ArrayKey: "zeroBalances",
		Renames:       map[string]string{"gasDay": "Gaz Günü", "zeroBalance": "BAST (TL)"},
		OutputColumns: []string{"Gaz Günü", "BAST (TL)"},
		DateColumns:   []string{"Gaz Günü"},
		Params:        ParamsRange,
	},
	{
		Name: "stp-gddk", Title: "Retroactive correction items (GDDK)", Category: "gas",
		Path: "stp/past-invoice", ArrayKey: "pastInvoices",
		Renames: map[string]string{
			"period":  "Dönem",
			"version": "Versiyon",
			"debt":    "GDDK Borç Tutarı (TL)",
			"credit":  "GDDK Alacak Tutarı (TL)",
		},
		OutputColumns: []string{"Dönem", "Versiyon", "GDDK Borç Tutarı (TL)", "GDDK Alacak Tutarı (TL)"},
		Params:        ParamsRange,
	},
	{
		Name: "stp-islem-akisi", Title: "STP transaction flow", Category: "gas",
		Path: "stp/transaction-history", ArrayKey: "transactionHistories",
		Renames: map[string]string{
			"contractName": "Kontrat",
			"mathcingDate": "Eşleşme Zamanı",
			"price":        "Fiyat",
			"quantity":     "Miktar",
		},
		OutputColumns: []string{"Kontrat", "Eşleşme Zamanı", "Fiyat", "Miktar"},
		Params:        ParamsRange,
	},
}
