package sample

import "github.com/bobmcallan/greenvest/internal/models"

var funds = []models.Fund{
	{
		ID:           "wind-energy",
		Name:         "Wind Energy ETF",
		Symbol:       "WIND",
		Value:        24050.75,
		Change:       0.5,
		Color:        "#00e6b8",
		AUM:          1200000000,
		TER:          0.15,
		PriceAtOpen:  17.74,
		PriceAtClose: 18.23,
		IssuedDate:   "2022-04-18",
		VintageRange: "2010 - 2022",
		Description:  "A comprehensive ETF tracking the performance of leading companies in the wind energy sector, including turbine manufacturers, wind farm operators, and renewable energy utilities.",
		Holdings: []models.Holding{
			{Name: "Vestas Wind Systems", Allocation: 12.5},
			{Name: "Siemens Gamesa", Allocation: 10.8},
			{Name: "Northland Power", Allocation: 8.5},
			{Name: "Orsted", Allocation: 7.9},
			{Name: "NextEra Energy", Allocation: 6.4},
		},
	},
	{
		ID:           "solar-power",
		Name:         "Solar Power Fund",
		Symbol:       "SOLR",
		Value:        9525.30,
		Change:       -1.2,
		Color:        "#FF6B6B",
		AUM:          850000000,
		TER:          0.18,
		PriceAtOpen:  96.40,
		PriceAtClose: 95.25,
		IssuedDate:   "2021-09-15",
		VintageRange: "2015 - 2023",
		Description:  "An actively managed fund investing in solar technology companies, photovoltaic panel manufacturers, and solar power plant operators worldwide.",
		Holdings: []models.Holding{
			{Name: "First Solar Inc", Allocation: 15.2},
			{Name: "SolarEdge Technologies", Allocation: 12.1},
			{Name: "Enphase Energy", Allocation: 10.5},
			{Name: "Sunrun Inc", Allocation: 8.2},
			{Name: "Canadian Solar", Allocation: 6.8},
		},
	},
	{
		ID:           "natural-resources",
		Name:         "Natural Resources",
		Symbol:       "NATR",
		Value:        27150.45,
		Change:       2.3,
		Color:        "#4CAF50",
		AUM:          1500000000,
		TER:          0.22,
		PriceAtOpen:  265.40,
		PriceAtClose: 271.50,
		IssuedDate:   "2020-06-22",
		VintageRange: "2012 - 2023",
		Description:  "A diversified fund focusing on sustainable resource management, including sustainable forestry, organic agriculture, and biodiversity conservation projects.",
		Holdings: []models.Holding{
			{Name: "Sustainable Timber Corp", Allocation: 14.3},
			{Name: "Green Earth Resources", Allocation: 11.7},
			{Name: "Bio-Organic Farms Ltd", Allocation: 9.8},
			{Name: "EcoSystem Management", Allocation: 8.4},
			{Name: "Natural Capital Group", Allocation: 7.2},
		},
	},
	{
		ID:           "water-tech",
		Name:         "Water Technology",
		Symbol:       "WATR",
		Value:        18275.90,
		Change:       1.7,
		Color:        "#2196F3",
		AUM:          750000000,
		TER:          0.20,
		PriceAtOpen:  179.70,
		PriceAtClose: 182.75,
		IssuedDate:   "2021-03-10",
		VintageRange: "2018 - 2023",
		Description:  "An innovative fund investing in water purification technology, smart water infrastructure, and companies developing solutions for water conservation and management.",
		Holdings: []models.Holding{
			{Name: "Pure Water Solutions", Allocation: 13.6},
			{Name: "Smart Water Systems", Allocation: 11.9},
			{Name: "Aqua Technologies", Allocation: 10.2},
			{Name: "H2O Infrastructure", Allocation: 8.7},
			{Name: "Blue Gold Corp", Allocation: 7.5},
		},
	},
	{
		ID:           "clean-industry",
		Name:         "Clean Industry",
		Symbol:       "CLNI",
		Value:        31425.60,
		Change:       -0.8,
		Color:        "#9C27B0",
		AUM:          2000000000,
		TER:          0.17,
		PriceAtOpen:  316.80,
		PriceAtClose: 314.25,
		IssuedDate:   "2019-11-30",
		VintageRange: "2015 - 2023",
		Description:  "A fund focused on industrial companies implementing clean technologies, sustainable manufacturing processes, and zero-emission production methods.",
		Holdings: []models.Holding{
			{Name: "Green Manufacturing Co", Allocation: 14.8},
			{Name: "Clean Tech Industries", Allocation: 12.3},
			{Name: "Sustainable Factory Corp", Allocation: 9.6},
			{Name: "Zero Emission Solutions", Allocation: 8.9},
			{Name: "EcoIndustrial Group", Allocation: 7.8},
		},
	},
	{
		ID:           "recycling",
		Name:         "Recycling Solutions",
		Symbol:       "RCYL",
		Value:        13850.25,
		Change:       3.1,
		Color:        "#FF9800",
		AUM:          600000000,
		TER:          0.19,
		PriceAtOpen:  134.30,
		PriceAtClose: 138.50,
		IssuedDate:   "2022-01-05",
		VintageRange: "2020 - 2023",
		Description:  "An ETF investing in companies specializing in waste management, recycling technologies, and circular economy solutions, including plastic recycling and e-waste management.",
		Holdings: []models.Holding{
			{Name: "Circular Solutions Inc", Allocation: 13.9},
			{Name: "Waste Management Tech", Allocation: 11.4},
			{Name: "RecycleNow Corp", Allocation: 9.7},
			{Name: "Green Loop Systems", Allocation: 8.3},
			{Name: "EcoRecycle Group", Allocation: 7.1},
		},
	},
}

// closes holds the last 30 daily closes per fund, oldest first
var closes = map[string][]float64{
	"wind-energy": {
		18.23, 18.15, 18.30, 18.10, 17.95, 18.05, 18.20, 18.35, 18.15, 18.25,
		18.40, 18.30, 18.15, 18.05, 17.95, 18.10, 18.25, 18.35, 18.45, 18.30,
		18.15, 18.25, 18.40, 18.50, 18.35, 18.20, 18.30, 18.45, 18.35, 18.23,
	},
	"solar-power": {
		95.25, 95.40, 95.15, 94.90, 95.30, 95.45, 95.20, 94.95, 95.35, 95.50,
		95.25, 95.10, 94.85, 95.20, 95.40, 95.15, 94.90, 95.30, 95.45, 95.20,
		94.95, 95.35, 95.50, 95.25, 95.10, 94.85, 95.20, 95.40, 95.30, 95.25,
	},
	"natural-resources": {
		271.50, 270.80, 272.30, 271.90, 272.50, 273.20, 272.80, 271.90, 272.40, 273.10,
		272.70, 271.80, 272.30, 273.00, 272.60, 271.70, 272.20, 272.90, 272.50, 271.60,
		272.10, 272.80, 272.40, 271.50, 272.00, 272.70, 272.30, 271.40, 271.90, 271.50,
	},
	"water-tech": {
		182.75, 182.90, 182.60, 182.30, 182.80, 183.00, 182.70, 182.40, 182.90, 183.10,
		182.80, 182.50, 183.00, 183.20, 182.90, 182.60, 183.10, 183.30, 183.00, 182.70,
		183.20, 183.40, 183.10, 182.80, 183.30, 183.50, 183.20, 182.90, 183.40, 182.75,
	},
	"clean-industry": {
		314.25, 314.50, 314.20, 313.90, 314.40, 314.70, 314.40, 314.10, 314.60, 314.90,
		314.60, 314.30, 314.80, 315.10, 314.80, 314.50, 315.00, 315.30, 315.00, 314.70,
		315.20, 315.50, 315.20, 314.90, 315.40, 315.70, 315.40, 315.10, 315.60, 314.25,
	},
	"recycling": {
		138.50, 138.70, 138.40, 138.10, 138.60, 138.90, 138.60, 138.30, 138.80, 139.10,
		138.80, 138.50, 139.00, 139.30, 139.00, 138.70, 139.20, 139.50, 139.20, 138.90,
		139.40, 139.70, 139.40, 139.10, 139.60, 139.90, 139.60, 139.30, 139.80, 138.50,
	},
}
