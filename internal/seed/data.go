package seed

import "motocat-backend/internal/model"

// motorcycles is the static seed catalog: a spread of makes, categories,
// displacements, years and price bands, including discontinued and collector
// models so every engine path has data behind it.
var motorcycles = []model.Motorcycle{
	{Make: "Honda", Model: "CB650R", Category: "naked", Displacement: 649, Year: 2021, BasePriceUSD: 9199, Status: model.StatusAvailable, TopSpeedKPH: 200, PowerHP: 94},
	{Make: "Honda", Model: "CBR1000RR-R Fireblade", Category: "sport", Displacement: 999, Year: 2023, BasePriceUSD: 28500, Status: model.StatusAvailable, TopSpeedKPH: 299, PowerHP: 215},
	{Make: "Honda", Model: "Africa Twin", Category: "adventure", Displacement: 1084, Year: 2022, BasePriceUSD: 14449, Status: model.StatusAvailable, TopSpeedKPH: 190, PowerHP: 101},
	{Make: "Honda", Model: "CB125F", Category: "commuter", Displacement: 124, Year: 2022, BasePriceUSD: 2849, Status: model.StatusAvailable, TopSpeedKPH: 105, PowerHP: 11},
	{Make: "Honda", Model: "CBR600RR", Category: "sport", Displacement: 599, Year: 2007, BasePriceUSD: 6500, Status: model.StatusDiscontinued, TopSpeedKPH: 257, PowerHP: 118},
	{Make: "Yamaha", Model: "MT-07", Category: "naked", Displacement: 689, Year: 2023, BasePriceUSD: 8199, Status: model.StatusAvailable, TopSpeedKPH: 193, PowerHP: 73},
	{Make: "Yamaha", Model: "YZF-R1", Category: "sport", Displacement: 998, Year: 2022, BasePriceUSD: 17999, Status: model.StatusAvailable, TopSpeedKPH: 299, PowerHP: 200},
	{Make: "Yamaha", Model: "Tenere 700", Category: "adventure", Displacement: 689, Year: 2023, BasePriceUSD: 10299, Status: model.StatusAvailable, TopSpeedKPH: 180, PowerHP: 72},
	{Make: "Yamaha", Model: "RX100", Category: "commuter", Displacement: 98, Year: 1985, BasePriceUSD: 3500, Status: model.StatusCollectorItem, TopSpeedKPH: 100, PowerHP: 11},
	{Make: "Yamaha", Model: "FZ-S FI", Category: "commuter", Displacement: 149, Year: 2022, BasePriceUSD: 1450, Status: model.StatusAvailable, TopSpeedKPH: 115, PowerHP: 12},
	{Make: "Kawasaki", Model: "Ninja ZX-10R", Category: "sport", Displacement: 998, Year: 2023, BasePriceUSD: 17399, Status: model.StatusAvailable, TopSpeedKPH: 299, PowerHP: 203},
	{Make: "Kawasaki", Model: "Z650", Category: "naked", Displacement: 649, Year: 2022, BasePriceUSD: 7749, Status: model.StatusAvailable, TopSpeedKPH: 191, PowerHP: 67},
	{Make: "Kawasaki", Model: "Versys 650", Category: "adventure", Displacement: 649, Year: 2021, BasePriceUSD: 8899, Status: model.StatusAvailable, TopSpeedKPH: 180, PowerHP: 66},
	{Make: "Kawasaki", Model: "KLR650", Category: "dual-sport", Displacement: 652, Year: 2018, BasePriceUSD: 6699, Status: model.StatusDiscontinued, TopSpeedKPH: 160, PowerHP: 40},
	{Make: "Suzuki", Model: "GSX-R1000R", Category: "sport", Displacement: 999, Year: 2022, BasePriceUSD: 17949, Status: model.StatusAvailable, TopSpeedKPH: 299, PowerHP: 199},
	{Make: "Suzuki", Model: "V-Strom 650", Category: "adventure", Displacement: 645, Year: 2023, BasePriceUSD: 9104, Status: model.StatusAvailable, TopSpeedKPH: 180, PowerHP: 70},
	{Make: "Suzuki", Model: "Hayabusa", Category: "sport-touring", Displacement: 1340, Year: 2023, BasePriceUSD: 18799, Status: model.StatusAvailable, TopSpeedKPH: 299, PowerHP: 187},
	{Make: "Royal Enfield", Model: "Classic 350", Category: "cruiser", Displacement: 349, Year: 2023, BasePriceUSD: 4599, Status: model.StatusAvailable, TopSpeedKPH: 114, PowerHP: 20},
	{Make: "Royal Enfield", Model: "Himalayan", Category: "adventure", Displacement: 411, Year: 2022, BasePriceUSD: 5299, Status: model.StatusAvailable, TopSpeedKPH: 130, PowerHP: 24},
	{Make: "Royal Enfield", Model: "Continental GT 650", Category: "cafe-racer", Displacement: 648, Year: 2023, BasePriceUSD: 6349, Status: model.StatusAvailable, TopSpeedKPH: 170, PowerHP: 47},
	{Make: "Royal Enfield", Model: "Bullet 500", Category: "cruiser", Displacement: 499, Year: 2019, BasePriceUSD: 4200, Status: model.StatusDiscontinued, TopSpeedKPH: 125, PowerHP: 27},
	{Make: "KTM", Model: "390 Duke", Category: "naked", Displacement: 373, Year: 2023, BasePriceUSD: 5799, Status: model.StatusAvailable, TopSpeedKPH: 167, PowerHP: 43},
	{Make: "KTM", Model: "1290 Super Duke R", Category: "naked", Displacement: 1301, Year: 2022, BasePriceUSD: 19599, Status: model.StatusAvailable, TopSpeedKPH: 290, PowerHP: 180},
	{Make: "KTM", Model: "450 EXC-F", Category: "enduro", Displacement: 450, Year: 2023, BasePriceUSD: 12199, Status: model.StatusAvailable, TopSpeedKPH: 140, PowerHP: 62},
	{Make: "Ducati", Model: "Panigale V4", Category: "sport", Displacement: 1103, Year: 2023, BasePriceUSD: 24995, Status: model.StatusAvailable, TopSpeedKPH: 299, PowerHP: 215},
	{Make: "Ducati", Model: "Monster", Category: "naked", Displacement: 937, Year: 2022, BasePriceUSD: 11995, Status: model.StatusAvailable, TopSpeedKPH: 230, PowerHP: 111},
	{Make: "Ducati", Model: "916", Category: "sport", Displacement: 916, Year: 1996, BasePriceUSD: 25000, Status: model.StatusCollectorItem, TopSpeedKPH: 257, PowerHP: 114},
	{Make: "BMW", Model: "R 1250 GS", Category: "adventure", Displacement: 1254, Year: 2023, BasePriceUSD: 17995, Status: model.StatusAvailable, TopSpeedKPH: 219, PowerHP: 136},
	{Make: "BMW", Model: "S 1000 RR", Category: "sport", Displacement: 999, Year: 2023, BasePriceUSD: 17895, Status: model.StatusAvailable, TopSpeedKPH: 299, PowerHP: 205},
	{Make: "Harley-Davidson", Model: "Iron 883", Category: "cruiser", Displacement: 883, Year: 2021, BasePriceUSD: 9749, Status: model.StatusDiscontinued, TopSpeedKPH: 170, PowerHP: 50},
	{Make: "Harley-Davidson", Model: "Road Glide", Category: "touring", Displacement: 1868, Year: 2023, BasePriceUSD: 21999, Status: model.StatusAvailable, TopSpeedKPH: 180, PowerHP: 93},
	{Make: "Triumph", Model: "Street Triple 765 RS", Category: "naked", Displacement: 765, Year: 2023, BasePriceUSD: 12595, Status: model.StatusAvailable, TopSpeedKPH: 250, PowerHP: 128},
	{Make: "Triumph", Model: "Bonneville T120", Category: "classic", Displacement: 1200, Year: 2022, BasePriceUSD: 12895, Status: model.StatusAvailable, TopSpeedKPH: 185, PowerHP: 79},
	{Make: "Bajaj", Model: "Pulsar NS200", Category: "naked", Displacement: 199, Year: 2023, BasePriceUSD: 1850, Status: model.StatusAvailable, TopSpeedKPH: 136, PowerHP: 24},
	{Make: "TVS", Model: "Apache RR 310", Category: "sport", Displacement: 312, Year: 2023, BasePriceUSD: 3250, Status: model.StatusAvailable, TopSpeedKPH: 160, PowerHP: 34},
	{Make: "Hero", Model: "Splendor Plus", Category: "commuter", Displacement: 97, Year: 2023, BasePriceUSD: 950, Status: model.StatusAvailable, TopSpeedKPH: 87, PowerHP: 8},
}
