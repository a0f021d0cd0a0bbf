package market

import "paper-exchange/internal/models"

// DefaultUniverse returns the built-in instrument universe: NSE large and
// mid caps with sector tags and session-open reference prices.
func DefaultUniverse() []models.Instrument {
	return []models.Instrument{
		// Banking
		{Symbol: "HDFCBANK", Name: "HDFC Bank Ltd", Sector: "Banking", ReferencePrice: 2150.20, PreviousClose: 2160.00},
		{Symbol: "ICICIBANK", Name: "ICICI Bank Ltd", Sector: "Banking", ReferencePrice: 1340.50, PreviousClose: 1325.00},
		{Symbol: "SBIN", Name: "State Bank of India", Sector: "Banking", ReferencePrice: 960.40, PreviousClose: 955.00},
		{Symbol: "KOTAKBANK", Name: "Kotak Mahindra Bank", Sector: "Banking", ReferencePrice: 1980.00, PreviousClose: 1995.00},
		{Symbol: "AXISBANK", Name: "Axis Bank Ltd", Sector: "Banking", ReferencePrice: 1420.10, PreviousClose: 1410.00},
		{Symbol: "INDUSINDBK", Name: "IndusInd Bank", Sector: "Banking", ReferencePrice: 1650.00, PreviousClose: 1640.00},
		{Symbol: "PNB", Name: "Punjab National Bank", Sector: "Banking", ReferencePrice: 145.00, PreviousClose: 142.00},
		{Symbol: "BANKBARODA", Name: "Bank of Baroda", Sector: "Banking", ReferencePrice: 290.00, PreviousClose: 288.00},

		// Finance
		{Symbol: "BAJFINANCE", Name: "Bajaj Finance", Sector: "Finance", ReferencePrice: 8850.00, PreviousClose: 8900.00},
		{Symbol: "BAJAJFINSV", Name: "Bajaj Finserv", Sector: "Finance", ReferencePrice: 1850.30, PreviousClose: 1840.00},
		{Symbol: "JIOFIN", Name: "Jio Financial Svcs", Sector: "Finance", ReferencePrice: 380.00, PreviousClose: 375.00},
		{Symbol: "CHOLAFIN", Name: "Cholamandalam Inv", Sector: "Finance", ReferencePrice: 1450.00, PreviousClose: 1440.00},

		// IT Services
		{Symbol: "TCS", Name: "Tata Consultancy Svcs", Sector: "IT", ReferencePrice: 4620.00, PreviousClose: 4580.00},
		{Symbol: "INFY", Name: "Infosys Ltd", Sector: "IT", ReferencePrice: 1780.75, PreviousClose: 1765.00},
		{Symbol: "HCLTECH", Name: "HCL Technologies", Sector: "IT", ReferencePrice: 1650.00, PreviousClose: 1640.00},
		{Symbol: "WIPRO", Name: "Wipro Ltd", Sector: "IT", ReferencePrice: 580.20, PreviousClose: 575.00},
		{Symbol: "TECHM", Name: "Tech Mahindra", Sector: "IT", ReferencePrice: 1450.50, PreviousClose: 1460.00},
		{Symbol: "LTIM", Name: "LTIMindtree", Sector: "IT", ReferencePrice: 5400.00, PreviousClose: 5350.00},
		{Symbol: "PERSISTENT", Name: "Persistent Systems", Sector: "IT", ReferencePrice: 8200.00, PreviousClose: 8100.00},

		// Energy & Oil
		{Symbol: "RELIANCE", Name: "Reliance Industries", Sector: "Energy", ReferencePrice: 3880.50, PreviousClose: 3850.00},
		{Symbol: "ONGC", Name: "ONGC", Sector: "Energy", ReferencePrice: 340.20, PreviousClose: 335.00},
		{Symbol: "POWERGRID", Name: "Power Grid Corp", Sector: "Energy", ReferencePrice: 390.00, PreviousClose: 385.00},
		{Symbol: "NTPC", Name: "NTPC Ltd", Sector: "Energy", ReferencePrice: 410.50, PreviousClose: 405.00},
		{Symbol: "ADANIENT", Name: "Adani Enterprises", Sector: "Energy", ReferencePrice: 3450.00, PreviousClose: 3400.00},
		{Symbol: "ADANIGREEN", Name: "Adani Green Energy", Sector: "Energy", ReferencePrice: 2100.00, PreviousClose: 2050.00},
		{Symbol: "BPCL", Name: "BPCL", Sector: "Energy", ReferencePrice: 680.00, PreviousClose: 675.00},
		{Symbol: "IOC", Name: "Indian Oil Corp", Sector: "Energy", ReferencePrice: 190.00, PreviousClose: 188.00},

		// Auto
		{Symbol: "TATAMOTORS", Name: "Tata Motors", Sector: "Auto", ReferencePrice: 1280.30, PreviousClose: 1270.00},
		{Symbol: "M&M", Name: "Mahindra & Mahindra", Sector: "Auto", ReferencePrice: 2450.00, PreviousClose: 2420.00},
		{Symbol: "MARUTI", Name: "Maruti Suzuki", Sector: "Auto", ReferencePrice: 13500.00, PreviousClose: 13400.00},
		{Symbol: "EICHERMOT", Name: "Eicher Motors", Sector: "Auto", ReferencePrice: 4900.00, PreviousClose: 4850.00},
		{Symbol: "BAJAJ-AUTO", Name: "Bajaj Auto", Sector: "Auto", ReferencePrice: 9200.00, PreviousClose: 9150.00},
		{Symbol: "HEROMOTOCO", Name: "Hero MotoCorp", Sector: "Auto", ReferencePrice: 5600.00, PreviousClose: 5550.00},
		{Symbol: "TVSMOTOR", Name: "TVS Motor Company", Sector: "Auto", ReferencePrice: 2500.00, PreviousClose: 2480.00},

		// FMCG
		{Symbol: "ITC", Name: "ITC Limited", Sector: "FMCG", ReferencePrice: 585.60, PreviousClose: 582.00},
		{Symbol: "HINDUNILVR", Name: "Hindustan Unilever", Sector: "FMCG", ReferencePrice: 2850.00, PreviousClose: 2860.00},
		{Symbol: "NESTLEIND", Name: "Nestle India", Sector: "FMCG", ReferencePrice: 26500.00, PreviousClose: 26400.00},
		{Symbol: "BRITANNIA", Name: "Britannia Ind", Sector: "FMCG", ReferencePrice: 5200.00, PreviousClose: 5150.00},
		{Symbol: "TATACONSUM", Name: "Tata Consumer", Sector: "FMCG", ReferencePrice: 1250.00, PreviousClose: 1240.00},
		{Symbol: "VARUNBEV", Name: "Varun Beverages", Sector: "FMCG", ReferencePrice: 1600.00, PreviousClose: 1580.00},

		// Consumer
		{Symbol: "TITAN", Name: "Titan Company", Sector: "Consumer", ReferencePrice: 3950.00, PreviousClose: 3920.00},
		{Symbol: "ASIANPAINT", Name: "Asian Paints", Sector: "Consumer", ReferencePrice: 3200.00, PreviousClose: 3210.00},
		{Symbol: "TRENT", Name: "Trent Ltd", Sector: "Consumer", ReferencePrice: 6200.00, PreviousClose: 6100.00},
		{Symbol: "DMART", Name: "Avenue Supermarts", Sector: "Consumer", ReferencePrice: 4800.00, PreviousClose: 4750.00},

		// Metals
		{Symbol: "TATASTEEL", Name: "Tata Steel", Sector: "Metals", ReferencePrice: 185.50, PreviousClose: 182.00},
		{Symbol: "JSWSTEEL", Name: "JSW Steel", Sector: "Metals", ReferencePrice: 980.00, PreviousClose: 970.00},
		{Symbol: "HINDALCO", Name: "Hindalco", Sector: "Metals", ReferencePrice: 720.00, PreviousClose: 710.00},
		{Symbol: "COALINDIA", Name: "Coal India", Sector: "Metals", ReferencePrice: 520.00, PreviousClose: 515.00},
		{Symbol: "VEDL", Name: "Vedanta Ltd", Sector: "Metals", ReferencePrice: 450.00, PreviousClose: 440.00},

		// Pharma
		{Symbol: "SUNPHARMA", Name: "Sun Pharma", Sector: "Pharma", ReferencePrice: 1850.00, PreviousClose: 1840.00},
		{Symbol: "CIPLA", Name: "Cipla Ltd", Sector: "Pharma", ReferencePrice: 1620.00, PreviousClose: 1610.00},
		{Symbol: "DRREDDY", Name: "Dr. Reddys Labs", Sector: "Pharma", ReferencePrice: 6800.00, PreviousClose: 6750.00},
		{Symbol: "DIVISLAB", Name: "Divis Laboratories", Sector: "Pharma", ReferencePrice: 4100.00, PreviousClose: 4050.00},

		// Infra & Others
		{Symbol: "LT", Name: "Larsen & Toubro", Sector: "Infra", ReferencePrice: 4100.00, PreviousClose: 4050.00},
		{Symbol: "BHARTIARTL", Name: "Bharti Airtel", Sector: "Telecom", ReferencePrice: 1450.00, PreviousClose: 1440.00},
		{Symbol: "ULTRACEMCO", Name: "UltraTech Cement", Sector: "Cement", ReferencePrice: 11200.00, PreviousClose: 11100.00},
		{Symbol: "ZOMATO", Name: "Zomato Ltd", Sector: "Tech", ReferencePrice: 280.50, PreviousClose: 275.00},
		{Symbol: "HAL", Name: "Hindustan Aeronautics", Sector: "Defence", ReferencePrice: 4500.00, PreviousClose: 4450.00},
		{Symbol: "BEL", Name: "Bharat Electronics", Sector: "Defence", ReferencePrice: 320.00, PreviousClose: 315.00},
	}
}
