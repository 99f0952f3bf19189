package catalogs

import "github.com/ternarybob/indago/internal/models"

// asxETFs is the curated table of exchange-traded funds listed on the ASX.
// Codes are exchange tickers. Products listed after 2015 have no ten-year
// figure yet.
var asxETFs = []models.Investment{
	{
		APIR: "VAS", Name: "Vanguard Australian Shares Index ETF",
		OneYear: models.Float(9.2), ThreeYears: models.Float(7.6), FiveYears: models.Float(8.1), TenYears: models.Float(8.3),
		TCR: models.Float(0.07), AssetClass: "Equity", Sector: "Australian Shares",
		Country: "Australia", Currency: "AUD", Exchange: "ASX", Kind: models.KindETF, Status: models.StatusCurated,
	},
	{
		APIR: "VGS", Name: "Vanguard MSCI Index International Shares ETF",
		OneYear: models.Float(14.8), ThreeYears: models.Float(11.2), FiveYears: models.Float(11.9), TenYears: models.Float(11.4),
		TCR: models.Float(0.18), AssetClass: "Equity", Sector: "International Shares",
		Country: "Australia", Currency: "AUD", Exchange: "ASX", Kind: models.KindETF, Status: models.StatusCurated,
	},
	{
		APIR: "IVV", Name: "iShares S&P 500 ETF",
		OneYear: models.Float(17.3), ThreeYears: models.Float(12.9), FiveYears: models.Float(13.8), TenYears: models.Float(14.1),
		TCR: models.Float(0.04), AssetClass: "Equity", Sector: "US Shares",
		Country: "Australia", Currency: "AUD", Exchange: "ASX", Kind: models.KindETF, Status: models.StatusCurated,
	},
	{
		APIR: "IOZ", Name: "iShares Core S&P/ASX 200 ETF",
		OneYear: models.Float(9.0), ThreeYears: models.Float(7.4), FiveYears: models.Float(7.9), TenYears: models.Float(8.0),
		TCR: models.Float(0.05), AssetClass: "Equity", Sector: "Australian Shares",
		Country: "Australia", Currency: "AUD", Exchange: "ASX", Kind: models.KindETF, Status: models.StatusCurated,
	},
	{
		APIR: "A200", Name: "Betashares Australia 200 ETF",
		OneYear: models.Float(9.1), ThreeYears: models.Float(7.5), FiveYears: models.Float(8.0),
		TCR: models.Float(0.04), AssetClass: "Equity", Sector: "Australian Shares",
		Country: "Australia", Currency: "AUD", Exchange: "ASX", Kind: models.KindETF, Status: models.StatusCurated,
	},
	{
		APIR: "STW", Name: "SPDR S&P/ASX 200 Fund",
		OneYear: models.Float(8.9), ThreeYears: models.Float(7.3), FiveYears: models.Float(7.8), TenYears: models.Float(7.9),
		TCR: models.Float(0.05), AssetClass: "Equity", Sector: "Australian Shares",
		Country: "Australia", Currency: "AUD", Exchange: "ASX", Kind: models.KindETF, Status: models.StatusCurated,
	},
	{
		APIR: "NDQ", Name: "Betashares Nasdaq 100 ETF",
		OneYear: models.Float(22.4), ThreeYears: models.Float(15.1), FiveYears: models.Float(17.2),
		TCR: models.Float(0.48), AssetClass: "Equity", Sector: "Technology",
		Country: "Australia", Currency: "AUD", Exchange: "ASX", Kind: models.KindETF, Status: models.StatusCurated,
	},
	{
		APIR: "VAF", Name: "Vanguard Australian Fixed Interest Index ETF",
		OneYear: models.Float(3.1), ThreeYears: models.Float(0.8), FiveYears: models.Float(1.2), TenYears: models.Float(2.4),
		TCR: models.Float(0.10), AssetClass: "Fixed Income", Sector: "Australian Bonds",
		Country: "Australia", Currency: "AUD", Exchange: "ASX", Kind: models.KindETF, Status: models.StatusCurated,
	},
	{
		APIR: "VDHG", Name: "Vanguard Diversified High Growth Index ETF",
		OneYear: models.Float(11.7), ThreeYears: models.Float(8.5), FiveYears: models.Float(9.1),
		TCR: models.Float(0.27), AssetClass: "Multi-Asset", Sector: "Diversified",
		Country: "Australia", Currency: "AUD", Exchange: "ASX", Kind: models.KindETF, Status: models.StatusCurated,
	},
	{
		APIR: "GOLD", Name: "Global X Physical Gold",
		OneYear: models.Float(19.6), ThreeYears: models.Float(12.8), FiveYears: models.Float(10.9), TenYears: models.Float(8.7),
		TCR: models.Float(0.40), AssetClass: "Commodity", Sector: "Gold",
		Country: "Australia", Currency: "AUD", Exchange: "ASX", Kind: models.KindETF, Status: models.StatusCurated,
	},
	{
		APIR: "QUAL", Name: "VanEck MSCI International Quality ETF",
		OneYear: models.Float(16.2), ThreeYears: models.Float(12.4), FiveYears: models.Float(13.6),
		TCR: models.Float(0.40), AssetClass: "Equity", Sector: "International Shares",
		Country: "Australia", Currency: "AUD", Exchange: "ASX", Kind: models.KindETF, Status: models.StatusCurated,
	},
	{
		APIR: "VTS", Name: "Vanguard US Total Market Shares Index ETF",
		OneYear: models.Float(16.9), ThreeYears: models.Float(12.5), FiveYears: models.Float(13.4), TenYears: models.Float(13.9),
		TCR: models.Float(0.03), AssetClass: "Equity", Sector: "US Shares",
		Country: "Australia", Currency: "AUD", Exchange: "ASX", Kind: models.KindETF, Status: models.StatusCurated,
	},
	{
		APIR: "VEU", Name: "Vanguard All-World ex-US Shares Index ETF",
		OneYear: models.Float(10.4), ThreeYears: models.Float(7.2), FiveYears: models.Float(7.7), TenYears: models.Float(7.5),
		TCR: models.Float(0.07), AssetClass: "Equity", Sector: "International Shares",
		Country: "Australia", Currency: "AUD", Exchange: "ASX", Kind: models.KindETF, Status: models.StatusCurated,
	},
	{
		APIR: "ETHI", Name: "Betashares Global Sustainability Leaders ETF",
		OneYear: models.Float(15.5), ThreeYears: models.Float(10.7), FiveYears: models.Float(12.3),
		TCR: models.Float(0.59), AssetClass: "Equity", Sector: "International Shares",
		Country: "Australia", Currency: "AUD", Exchange: "ASX", Kind: models.KindETF, Status: models.StatusCurated,
	},
	{
		APIR: "MVW", Name: "VanEck Australian Equal Weight ETF",
		OneYear: models.Float(7.7), ThreeYears: models.Float(5.9), FiveYears: models.Float(6.6),
		TCR: models.Float(0.35), AssetClass: "Equity", Sector: "Australian Shares",
		Country: "Australia", Currency: "AUD", Exchange: "ASX", Kind: models.KindETF, Status: models.StatusCurated,
	},
	{
		APIR: "VAP", Name: "Vanguard Australian Property Securities Index ETF",
		OneYear: models.Float(12.1), ThreeYears: models.Float(6.4), FiveYears: models.Float(5.8), TenYears: models.Float(7.3),
		TCR: models.Float(0.23), AssetClass: "Equity", Sector: "Property",
		Country: "Australia", Currency: "AUD", Exchange: "ASX", Kind: models.KindETF, Status: models.StatusCurated,
	},
	{
		APIR: "IOO", Name: "iShares Global 100 ETF",
		OneYear: models.Float(18.0), ThreeYears: models.Float(13.3), FiveYears: models.Float(14.2), TenYears: models.Float(13.5),
		TCR: models.Float(0.40), AssetClass: "Equity", Sector: "International Shares",
		Country: "Australia", Currency: "AUD", Exchange: "ASX", Kind: models.KindETF, Status: models.StatusCurated,
	},
	{
		APIR: "VGE", Name: "Vanguard FTSE Emerging Markets Shares ETF",
		OneYear: models.Float(13.2), ThreeYears: models.Float(6.1), FiveYears: models.Float(5.4),
		TCR: models.Float(0.48), AssetClass: "Equity", Sector: "Emerging Markets",
		Country: "Australia", Currency: "AUD", Exchange: "ASX", Kind: models.KindETF, Status: models.StatusCurated,
	},
}
