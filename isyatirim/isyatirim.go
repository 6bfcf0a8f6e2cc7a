// Package isyatirim retrieves Borsa Istanbul market data from the İş
// Yatırım portal: daily price history, financial statements, dividend and
// capital-increase history, foreign ownership and precious-metal quotes.
//
// The portal is not a documented API. Each endpoint wraps its answer in a
// different envelope and some only exist as HTML on the company card page,
// so this package hides all of that behind a Client and returns plain
// domain values.
package isyatirim

import "net/http"

const (
	priceURL     = "https://www.isyatirim.com.tr/_layouts/15/Isyatirim.Website/Common/Data.aspx/HisseTekil"
	statementURL = "https://www.isyatirim.com.tr/_layouts/15/IsYatirim.Website/Common/Data.aspx/MaliTablo"
	capitalURL   = "https://www.isyatirim.com.tr/_layouts/15/IsYatirim.Website/StockInfo/CompanyInfoAjax.aspx/GetSermayeArttirimlari"
	companyURL   = "https://www.isyatirim.com.tr/tr-tr/analiz/hisse/Sayfalar/sirket-karti.aspx?hisse="
	foreignURL   = "https://www.isyatirim.com.tr/_layouts/15/IsYatirim.Website/StockInfo/CompanyInfoAjax.aspx/GetYabanciOranlarXHR"

	metalsHistoryURL = "https://www.isyatirim.com.tr/_Layouts/15/IsYatirim.Website/Common/ChartData.aspx/IndexHistoricalAll"
	metalsDailyURL   = "https://www.isyatirim.com.tr/_layouts/15/Isyatirim.Website/Common/Data.aspx/OneEndeks"
)

// queryDateFormat is the dd-mm-yyyy form the portal's query parameters use.
const queryDateFormat = "02-01-2006"

// Client fetches from the portal. Responses are cached on disk for a day,
// the portal publishes daily data only.
type Client struct {
	http *http.Client
}

// NewClient returns a ready Client.
func NewClient() *Client {
	return &Client{http: newDailyCachingClient()}
}
