package catalogs

import "github.com/ternarybob/indago/internal/models"

// superOptions is the curated table of Australian super-fund investment
// options. Codes are APIR product codes; Sector carries the option style.
// Return figures are point-in-time and refreshed by hand.
var superOptions = []models.Investment{
	{
		APIR: "AMP0447AU", Name: "AMP Balanced Growth Option",
		OneYear: models.Float(8.2), ThreeYears: models.Float(6.1), FiveYears: models.Float(6.8), TenYears: models.Float(7.0),
		TCR: models.Float(0.66), AssetClass: "Multi-Asset", Sector: "Balanced",
		Country: "Australia", Currency: "AUD", Kind: models.KindSuperOption, Status: models.StatusCurated,
	},
	{
		APIR: "AMP1232AU", Name: "AMP Future Directions High Growth",
		OneYear: models.Float(11.4), ThreeYears: models.Float(8.3), FiveYears: models.Float(8.9),
		TCR: models.Float(0.95), AssetClass: "Multi-Asset", Sector: "High Growth",
		Country: "Australia", Currency: "AUD", Kind: models.KindSuperOption, Status: models.StatusCurated,
	},
	{
		APIR: "BTA0054AU", Name: "BT Active Balanced Fund",
		OneYear: models.Float(7.9), ThreeYears: models.Float(5.8), FiveYears: models.Float(6.2), TenYears: models.Float(6.9),
		TCR: models.Float(0.89), AssetClass: "Multi-Asset", Sector: "Balanced",
		Country: "Australia", Currency: "AUD", Kind: models.KindSuperOption, Status: models.StatusCurated,
	},
	{
		APIR: "BTA0805AU", Name: "BT Multi-Manager Conservative Fund",
		OneYear: models.Float(4.6), ThreeYears: models.Float(3.2), FiveYears: models.Float(3.8),
		TCR: models.Float(0.74), AssetClass: "Multi-Asset", Sector: "Conservative",
		Country: "Australia", Currency: "AUD", Kind: models.KindSuperOption, Status: models.StatusCurated,
	},
	{
		APIR: "FSF0008AU", Name: "CFS FirstChoice Growth Fund",
		OneYear: models.Float(10.1), ThreeYears: models.Float(7.4), FiveYears: models.Float(7.8), TenYears: models.Float(8.1),
		TCR: models.Float(0.98), AssetClass: "Multi-Asset", Sector: "Growth",
		Country: "Australia", Currency: "AUD", Kind: models.KindSuperOption, Status: models.StatusCurated,
	},
	{
		APIR: "FSF1018AU", Name: "CFS FirstChoice Moderate Fund",
		OneYear: models.Float(6.3), ThreeYears: models.Float(4.7), FiveYears: models.Float(5.1),
		TCR: models.Float(0.85), AssetClass: "Multi-Asset", Sector: "Moderate",
		Country: "Australia", Currency: "AUD", Kind: models.KindSuperOption, Status: models.StatusCurated,
	},
	{
		APIR: "MLC0260AU", Name: "MLC Horizon 4 Balanced Portfolio",
		OneYear: models.Float(8.8), ThreeYears: models.Float(6.5), FiveYears: models.Float(7.1), TenYears: models.Float(7.4),
		TCR: models.Float(0.77), AssetClass: "Multi-Asset", Sector: "Balanced",
		Country: "Australia", Currency: "AUD", Kind: models.KindSuperOption, Status: models.StatusCurated,
	},
	{
		APIR: "MLC0669AU", Name: "MLC Horizon 6 Share Portfolio",
		OneYear: models.Float(12.6), ThreeYears: models.Float(9.2), FiveYears: models.Float(9.8), TenYears: models.Float(9.5),
		TCR: models.Float(0.81), AssetClass: "Equity", Sector: "High Growth",
		Country: "Australia", Currency: "AUD", Kind: models.KindSuperOption, Status: models.StatusCurated,
	},
	{
		APIR: "PER0011AU", Name: "Perpetual Conservative Growth Fund",
		OneYear: models.Float(5.1), ThreeYears: models.Float(3.9), FiveYears: models.Float(4.2), TenYears: models.Float(4.8),
		TCR: models.Float(0.92), AssetClass: "Multi-Asset", Sector: "Conservative",
		Country: "Australia", Currency: "AUD", Kind: models.KindSuperOption, Status: models.StatusCurated,
	},
	{
		APIR: "PER0063AU", Name: "Perpetual Balanced Growth Fund",
		OneYear: models.Float(9.3), ThreeYears: models.Float(6.8), FiveYears: models.Float(7.2), TenYears: models.Float(7.6),
		TCR: models.Float(1.02), AssetClass: "Multi-Asset", Sector: "Balanced",
		Country: "Australia", Currency: "AUD", Kind: models.KindSuperOption, Status: models.StatusCurated,
	},
	{
		APIR: "VAN0002AU", Name: "Vanguard Index Australian Shares Fund",
		OneYear: models.Float(9.7), ThreeYears: models.Float(7.9), FiveYears: models.Float(8.4), TenYears: models.Float(8.6),
		TCR: models.Float(0.16), AssetClass: "Equity", Sector: "Australian Shares",
		Country: "Australia", Currency: "AUD", Kind: models.KindSuperOption, Status: models.StatusCurated,
	},
	{
		APIR: "VAN0108AU", Name: "Vanguard Growth Index Fund",
		OneYear: models.Float(10.2), ThreeYears: models.Float(7.1), FiveYears: models.Float(7.7), TenYears: models.Float(8.0),
		TCR: models.Float(0.29), AssetClass: "Multi-Asset", Sector: "Growth",
		Country: "Australia", Currency: "AUD", Kind: models.KindSuperOption, Status: models.StatusCurated,
	},
	{
		APIR: "VAN0101AU", Name: "Vanguard Balanced Index Fund",
		OneYear: models.Float(7.8), ThreeYears: models.Float(5.6), FiveYears: models.Float(6.0), TenYears: models.Float(6.7),
		TCR: models.Float(0.29), AssetClass: "Multi-Asset", Sector: "Balanced",
		Country: "Australia", Currency: "AUD", Kind: models.KindSuperOption, Status: models.StatusCurated,
	},
	{
		APIR: "ETL0015AU", Name: "EQT Growth Fund",
		OneYear: models.Float(9.9), ThreeYears: models.Float(7.0),
		TCR: models.Float(0.99), AssetClass: "Multi-Asset", Sector: "Growth",
		Country: "Australia", Currency: "AUD", Kind: models.KindSuperOption, Status: models.StatusCurated,
	},
	{
		APIR: "ETL0201AU", Name: "EQT Diversified Fixed Income Fund",
		OneYear: models.Float(3.4), ThreeYears: models.Float(1.9), FiveYears: models.Float(2.1),
		TCR: models.Float(0.62), AssetClass: "Fixed Income", Sector: "Conservative",
		Country: "Australia", Currency: "AUD", Kind: models.KindSuperOption, Status: models.StatusCurated,
	},
	{
		APIR: "IOF0097AU", Name: "IOOF MultiMix Balanced Growth Trust",
		OneYear: models.Float(8.5), ThreeYears: models.Float(6.3), FiveYears: models.Float(6.9), TenYears: models.Float(7.2),
		TCR: models.Float(0.93), AssetClass: "Multi-Asset", Sector: "Balanced",
		Country: "Australia", Currency: "AUD", Kind: models.KindSuperOption, Status: models.StatusCurated,
	},
	{
		APIR: "IOF0254AU", Name: "IOOF Balanced Investor Trust",
		OneYear: models.Float(7.4), ThreeYears: models.Float(5.5), FiveYears: models.Float(5.9),
		TCR: models.Float(0.55), AssetClass: "Multi-Asset", Sector: "Balanced",
		Country: "Australia", Currency: "AUD", Kind: models.KindSuperOption, Status: models.StatusCurated,
	},
	{
		APIR: "MLC0397AU", Name: "MLC Wholesale Index Plus Conservative Growth",
		OneYear: models.Float(6.1), ThreeYears: models.Float(4.4),
		TCR: models.Float(0.40), AssetClass: "Multi-Asset", Sector: "Conservative",
		Country: "Australia", Currency: "AUD", Kind: models.KindSuperOption, Status: models.StatusCurated,
	},
	{
		APIR: "AMP1995AU", Name: "AMP MySuper 1990s Plus Option",
		OneYear: models.Float(10.8), ThreeYears: models.Float(7.7), FiveYears: models.Float(8.2),
		TCR: models.Float(0.72), AssetClass: "Multi-Asset", Sector: "High Growth",
		Country: "Australia", Currency: "AUD", Kind: models.KindSuperOption, Status: models.StatusCurated,
	},
	{
		APIR: "BTA0504AU", Name: "BT Sustainable Balanced Fund",
		OneYear: models.Float(7.2), ThreeYears: models.Float(5.1),
		TCR: models.Float(0.90), AssetClass: "Multi-Asset", Sector: "Balanced",
		Country: "Australia", Currency: "AUD", Kind: models.KindSuperOption, Status: models.StatusCurated,
	},
}
