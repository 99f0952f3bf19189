package normalize

// Providers disagree on field names for the same concept. Each list below
// is a lookup priority: the first key holding a usable value wins. The
// lists are data; changing provider field names never touches logic.
var (
	identifierKeys = []string{"fundShareClassId", "SecId", "Ticker", "SecurityId", "ISIN"}
	nameKeys       = []string{"Name", "LegalName", "StandardName"}
	sectorKeys     = []string{"LargestSector", "SectorName"}
	assetClassKeys = []string{"globalAssetClassId"}
	countryKeys    = []string{"Domicile", "CountryId", "Country"}
	currencyKeys   = []string{"PriceCurrency", "CurrencyId", "Currency"}
	exchangeKeys   = []string{"ExchangeId", "Exchange"}
)

// Return figures and charges come through under one key per measure.
var (
	threeMonthsKeys = []string{"GBRReturnM3"}
	oneYearKeys     = []string{"GBRReturnM12"}
	threeYearsKeys  = []string{"GBRReturnM36"}
	fiveYearsKeys   = []string{"GBRReturnM60"}
	tenYearsKeys    = []string{"GBRReturnM120"}
	costKeys        = []string{"ongoingCharge"}
)
