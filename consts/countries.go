package consts

import (
	"fmt"
	"strings"

	"github.com/eliasgr/API/schema"
)

const flagBaseURL = "https://disease.sh/assets/img/flags"

// CountryRecord pairs the published identity of a country with the
// alternate spellings upstream sources use for it. JHU names that differ
// from ours (Burma, Korea South, Taiwan*) are covered by aliases.
type CountryRecord struct {
	Info    schema.CountryInfo
	Aliases []string
}

// Countries is the country reference table. IDs are ISO 3166-1 numeric,
// coordinates are country centroids as JHU publishes them. Flag URLs are
// filled in during init from the ISO2 code.
var Countries = []CountryRecord{
	{Info: schema.CountryInfo{ID: 4, Country: "Afghanistan", Iso2: "AF", Iso3: "AFG", Lat: 33, Long: 65}},
	{Info: schema.CountryInfo{ID: 8, Country: "Albania", Iso2: "AL", Iso3: "ALB", Lat: 41.1533, Long: 20.1683}},
	{Info: schema.CountryInfo{ID: 12, Country: "Algeria", Iso2: "DZ", Iso3: "DZA", Lat: 28.0339, Long: 1.6596}},
	{Info: schema.CountryInfo{ID: 20, Country: "Andorra", Iso2: "AD", Iso3: "AND", Lat: 42.5063, Long: 1.5218}},
	{Info: schema.CountryInfo{ID: 24, Country: "Angola", Iso2: "AO", Iso3: "AGO", Lat: -11.2027, Long: 17.8739}},
	{Info: schema.CountryInfo{ID: 28, Country: "Antigua and Barbuda", Iso2: "AG", Iso3: "ATG", Lat: 17.0608, Long: -61.7964}},
	{Info: schema.CountryInfo{ID: 32, Country: "Argentina", Iso2: "AR", Iso3: "ARG", Lat: -38.4161, Long: -63.6167}},
	{Info: schema.CountryInfo{ID: 51, Country: "Armenia", Iso2: "AM", Iso3: "ARM", Lat: 40.0691, Long: 45.0382}},
	{Info: schema.CountryInfo{ID: 36, Country: "Australia", Iso2: "AU", Iso3: "AUS", Lat: -25.2744, Long: 133.7751}},
	{Info: schema.CountryInfo{ID: 40, Country: "Austria", Iso2: "AT", Iso3: "AUT", Lat: 47.5162, Long: 14.5501}},
	{Info: schema.CountryInfo{ID: 31, Country: "Azerbaijan", Iso2: "AZ", Iso3: "AZE", Lat: 40.1431, Long: 47.5769}},
	{Info: schema.CountryInfo{ID: 44, Country: "Bahamas", Iso2: "BS", Iso3: "BHS", Lat: 25.0343, Long: -77.3963}, Aliases: []string{"The Bahamas", "Bahamas, The"}},
	{Info: schema.CountryInfo{ID: 48, Country: "Bahrain", Iso2: "BH", Iso3: "BHR", Lat: 25.9304, Long: 50.6378}},
	{Info: schema.CountryInfo{ID: 50, Country: "Bangladesh", Iso2: "BD", Iso3: "BGD", Lat: 23.685, Long: 90.3563}},
	{Info: schema.CountryInfo{ID: 52, Country: "Barbados", Iso2: "BB", Iso3: "BRB", Lat: 13.1939, Long: -59.5432}},
	{Info: schema.CountryInfo{ID: 112, Country: "Belarus", Iso2: "BY", Iso3: "BLR", Lat: 53.7098, Long: 27.9534}},
	{Info: schema.CountryInfo{ID: 56, Country: "Belgium", Iso2: "BE", Iso3: "BEL", Lat: 50.5039, Long: 4.4699}},
	{Info: schema.CountryInfo{ID: 84, Country: "Belize", Iso2: "BZ", Iso3: "BLZ", Lat: 17.1899, Long: -88.4976}},
	{Info: schema.CountryInfo{ID: 204, Country: "Benin", Iso2: "BJ", Iso3: "BEN", Lat: 9.3077, Long: 2.3158}},
	{Info: schema.CountryInfo{ID: 64, Country: "Bhutan", Iso2: "BT", Iso3: "BTN", Lat: 27.5142, Long: 90.4336}},
	{Info: schema.CountryInfo{ID: 68, Country: "Bolivia", Iso2: "BO", Iso3: "BOL", Lat: -16.2902, Long: -63.5887}},
	{Info: schema.CountryInfo{ID: 70, Country: "Bosnia", Iso2: "BA", Iso3: "BIH", Lat: 43.9159, Long: 17.6791}, Aliases: []string{"Bosnia and Herzegovina"}},
	{Info: schema.CountryInfo{ID: 72, Country: "Botswana", Iso2: "BW", Iso3: "BWA", Lat: -22.3285, Long: 24.6849}},
	{Info: schema.CountryInfo{ID: 76, Country: "Brazil", Iso2: "BR", Iso3: "BRA", Lat: -14.235, Long: -51.9253}},
	{Info: schema.CountryInfo{ID: 96, Country: "Brunei", Iso2: "BN", Iso3: "BRN", Lat: 4.5353, Long: 114.7277}, Aliases: []string{"Brunei Darussalam"}},
	{Info: schema.CountryInfo{ID: 100, Country: "Bulgaria", Iso2: "BG", Iso3: "BGR", Lat: 42.7339, Long: 25.4858}},
	{Info: schema.CountryInfo{ID: 854, Country: "Burkina Faso", Iso2: "BF", Iso3: "BFA", Lat: 12.2383, Long: -1.5616}},
	{Info: schema.CountryInfo{ID: 108, Country: "Burundi", Iso2: "BI", Iso3: "BDI", Lat: -3.3731, Long: 29.9189}},
	{Info: schema.CountryInfo{ID: 132, Country: "Cabo Verde", Iso2: "CV", Iso3: "CPV", Lat: 16.5388, Long: -23.0418}, Aliases: []string{"Cape Verde"}},
	{Info: schema.CountryInfo{ID: 116, Country: "Cambodia", Iso2: "KH", Iso3: "KHM", Lat: 12.5657, Long: 104.991}},
	{Info: schema.CountryInfo{ID: 120, Country: "Cameroon", Iso2: "CM", Iso3: "CMR", Lat: 7.3697, Long: 12.3547}},
	{Info: schema.CountryInfo{ID: 124, Country: "Canada", Iso2: "CA", Iso3: "CAN", Lat: 56.1304, Long: -106.3468}},
	{Info: schema.CountryInfo{ID: 140, Country: "Central African Republic", Iso2: "CF", Iso3: "CAF", Lat: 6.6111, Long: 20.9394}},
	{Info: schema.CountryInfo{ID: 148, Country: "Chad", Iso2: "TD", Iso3: "TCD", Lat: 15.4542, Long: 18.7322}},
	{Info: schema.CountryInfo{ID: 152, Country: "Chile", Iso2: "CL", Iso3: "CHL", Lat: -35.6751, Long: -71.543}},
	{Info: schema.CountryInfo{ID: 156, Country: "China", Iso2: "CN", Iso3: "CHN", Lat: 35.8617, Long: 104.1954}, Aliases: []string{"Mainland China"}},
	{Info: schema.CountryInfo{ID: 170, Country: "Colombia", Iso2: "CO", Iso3: "COL", Lat: 4.5709, Long: -74.2973}},
	{Info: schema.CountryInfo{ID: 174, Country: "Comoros", Iso2: "KM", Iso3: "COM", Lat: -11.6455, Long: 43.3333}},
	{Info: schema.CountryInfo{ID: 178, Country: "Congo", Iso2: "CG", Iso3: "COG", Lat: -0.228, Long: 15.8277}, Aliases: []string{"Congo (Brazzaville)", "Republic of the Congo"}},
	{Info: schema.CountryInfo{ID: 180, Country: "DRC", Iso2: "CD", Iso3: "COD", Lat: -4.0383, Long: 21.7587}, Aliases: []string{"Congo (Kinshasa)", "DR Congo", "Democratic Republic of the Congo"}},
	{Info: schema.CountryInfo{ID: 188, Country: "Costa Rica", Iso2: "CR", Iso3: "CRI", Lat: 9.7489, Long: -83.7534}},
	{Info: schema.CountryInfo{ID: 384, Country: "Côte d'Ivoire", Iso2: "CI", Iso3: "CIV", Lat: 7.54, Long: -5.5471}, Aliases: []string{"Cote d'Ivoire", "Ivory Coast"}},
	{Info: schema.CountryInfo{ID: 191, Country: "Croatia", Iso2: "HR", Iso3: "HRV", Lat: 45.1, Long: 15.2}},
	{Info: schema.CountryInfo{ID: 192, Country: "Cuba", Iso2: "CU", Iso3: "CUB", Lat: 21.5218, Long: -77.7812}},
	{Info: schema.CountryInfo{ID: 196, Country: "Cyprus", Iso2: "CY", Iso3: "CYP", Lat: 35.1264, Long: 33.4299}},
	{Info: schema.CountryInfo{ID: 203, Country: "Czechia", Iso2: "CZ", Iso3: "CZE", Lat: 49.8175, Long: 15.473}, Aliases: []string{"Czech Republic"}},
	{Info: schema.CountryInfo{ID: 208, Country: "Denmark", Iso2: "DK", Iso3: "DNK", Lat: 56.2639, Long: 9.5018}},
	{Info: schema.CountryInfo{ID: 262, Country: "Djibouti", Iso2: "DJ", Iso3: "DJI", Lat: 11.8251, Long: 42.5903}},
	{Info: schema.CountryInfo{ID: 212, Country: "Dominica", Iso2: "DM", Iso3: "DMA", Lat: 15.415, Long: -61.371}},
	{Info: schema.CountryInfo{ID: 214, Country: "Dominican Republic", Iso2: "DO", Iso3: "DOM", Lat: 18.7357, Long: -70.1627}},
	{Info: schema.CountryInfo{ID: 218, Country: "Ecuador", Iso2: "EC", Iso3: "ECU", Lat: -1.8312, Long: -78.1834}},
	{Info: schema.CountryInfo{ID: 818, Country: "Egypt", Iso2: "EG", Iso3: "EGY", Lat: 26.8206, Long: 30.8025}},
	{Info: schema.CountryInfo{ID: 222, Country: "El Salvador", Iso2: "SV", Iso3: "SLV", Lat: 13.7942, Long: -88.8965}},
	{Info: schema.CountryInfo{ID: 226, Country: "Equatorial Guinea", Iso2: "GQ", Iso3: "GNQ", Lat: 1.6508, Long: 10.2679}},
	{Info: schema.CountryInfo{ID: 232, Country: "Eritrea", Iso2: "ER", Iso3: "ERI", Lat: 15.1794, Long: 39.7823}},
	{Info: schema.CountryInfo{ID: 233, Country: "Estonia", Iso2: "EE", Iso3: "EST", Lat: 58.5953, Long: 25.0136}},
	{Info: schema.CountryInfo{ID: 748, Country: "Eswatini", Iso2: "SZ", Iso3: "SWZ", Lat: -26.5225, Long: 31.4659}, Aliases: []string{"Swaziland"}},
	{Info: schema.CountryInfo{ID: 231, Country: "Ethiopia", Iso2: "ET", Iso3: "ETH", Lat: 9.145, Long: 40.4897}},
	{Info: schema.CountryInfo{ID: 242, Country: "Fiji", Iso2: "FJ", Iso3: "FJI", Lat: -17.7134, Long: 178.065}},
	{Info: schema.CountryInfo{ID: 246, Country: "Finland", Iso2: "FI", Iso3: "FIN", Lat: 61.9241, Long: 25.7482}},
	{Info: schema.CountryInfo{ID: 250, Country: "France", Iso2: "FR", Iso3: "FRA", Lat: 46.2276, Long: 2.2137}},
	{Info: schema.CountryInfo{ID: 266, Country: "Gabon", Iso2: "GA", Iso3: "GAB", Lat: -0.8037, Long: 11.6094}},
	{Info: schema.CountryInfo{ID: 270, Country: "Gambia", Iso2: "GM", Iso3: "GMB", Lat: 13.4432, Long: -15.3101}, Aliases: []string{"The Gambia", "Gambia, The"}},
	{Info: schema.CountryInfo{ID: 268, Country: "Georgia", Iso2: "GE", Iso3: "GEO", Lat: 42.3154, Long: 43.3569}},
	{Info: schema.CountryInfo{ID: 276, Country: "Germany", Iso2: "DE", Iso3: "DEU", Lat: 51.1657, Long: 10.4515}},
	{Info: schema.CountryInfo{ID: 288, Country: "Ghana", Iso2: "GH", Iso3: "GHA", Lat: 7.9465, Long: -1.0232}},
	{Info: schema.CountryInfo{ID: 300, Country: "Greece", Iso2: "GR", Iso3: "GRC", Lat: 39.0742, Long: 21.8243}},
	{Info: schema.CountryInfo{ID: 308, Country: "Grenada", Iso2: "GD", Iso3: "GRD", Lat: 12.1165, Long: -61.679}},
	{Info: schema.CountryInfo{ID: 320, Country: "Guatemala", Iso2: "GT", Iso3: "GTM", Lat: 15.7835, Long: -90.2308}},
	{Info: schema.CountryInfo{ID: 324, Country: "Guinea", Iso2: "GN", Iso3: "GIN", Lat: 9.9456, Long: -9.6966}},
	{Info: schema.CountryInfo{ID: 624, Country: "Guinea-Bissau", Iso2: "GW", Iso3: "GNB", Lat: 11.8037, Long: -15.1804}},
	{Info: schema.CountryInfo{ID: 328, Country: "Guyana", Iso2: "GY", Iso3: "GUY", Lat: 4.8604, Long: -58.9302}},
	{Info: schema.CountryInfo{ID: 332, Country: "Haiti", Iso2: "HT", Iso3: "HTI", Lat: 18.9712, Long: -72.2852}},
	{Info: schema.CountryInfo{ID: 336, Country: "Vatican City", Iso2: "VA", Iso3: "VAT", Lat: 41.9029, Long: 12.4534}, Aliases: []string{"Holy See", "Holy See (Vatican City State)"}},
	{Info: schema.CountryInfo{ID: 340, Country: "Honduras", Iso2: "HN", Iso3: "HND", Lat: 15.2, Long: -86.2419}},
	{Info: schema.CountryInfo{ID: 348, Country: "Hungary", Iso2: "HU", Iso3: "HUN", Lat: 47.1625, Long: 19.5033}},
	{Info: schema.CountryInfo{ID: 352, Country: "Iceland", Iso2: "IS", Iso3: "ISL", Lat: 64.9631, Long: -19.0208}},
	{Info: schema.CountryInfo{ID: 356, Country: "India", Iso2: "IN", Iso3: "IND", Lat: 20.5937, Long: 78.9629}},
	{Info: schema.CountryInfo{ID: 360, Country: "Indonesia", Iso2: "ID", Iso3: "IDN", Lat: -0.7893, Long: 113.9213}},
	{Info: schema.CountryInfo{ID: 364, Country: "Iran", Iso2: "IR", Iso3: "IRN", Lat: 32.4279, Long: 53.688}, Aliases: []string{"Iran, Islamic Republic of", "Islamic Republic of Iran"}},
	{Info: schema.CountryInfo{ID: 368, Country: "Iraq", Iso2: "IQ", Iso3: "IRQ", Lat: 33.2232, Long: 43.6793}},
	{Info: schema.CountryInfo{ID: 372, Country: "Ireland", Iso2: "IE", Iso3: "IRL", Lat: 53.4129, Long: -8.2439}, Aliases: []string{"Republic of Ireland"}},
	{Info: schema.CountryInfo{ID: 376, Country: "Israel", Iso2: "IL", Iso3: "ISR", Lat: 31.0461, Long: 34.8516}},
	{Info: schema.CountryInfo{ID: 380, Country: "Italy", Iso2: "IT", Iso3: "ITA", Lat: 41.8719, Long: 12.5674}},
	{Info: schema.CountryInfo{ID: 388, Country: "Jamaica", Iso2: "JM", Iso3: "JAM", Lat: 18.1096, Long: -77.2975}},
	{Info: schema.CountryInfo{ID: 392, Country: "Japan", Iso2: "JP", Iso3: "JPN", Lat: 36.2048, Long: 138.2529}},
	{Info: schema.CountryInfo{ID: 400, Country: "Jordan", Iso2: "JO", Iso3: "JOR", Lat: 30.5852, Long: 36.2384}},
	{Info: schema.CountryInfo{ID: 398, Country: "Kazakhstan", Iso2: "KZ", Iso3: "KAZ", Lat: 48.0196, Long: 66.9237}},
	{Info: schema.CountryInfo{ID: 404, Country: "Kenya", Iso2: "KE", Iso3: "KEN", Lat: -0.0236, Long: 37.9062}},
	{Info: schema.CountryInfo{ID: 410, Country: "S. Korea", Iso2: "KR", Iso3: "KOR", Lat: 35.9078, Long: 127.7669}, Aliases: []string{"Korea, South", "Korea South", "South Korea", "Republic of Korea"}},
	{Info: schema.CountryInfo{ID: 383, Country: "Kosovo", Iso2: "XK", Iso3: "XKX", Lat: 42.6026, Long: 20.903}},
	{Info: schema.CountryInfo{ID: 414, Country: "Kuwait", Iso2: "KW", Iso3: "KWT", Lat: 29.3117, Long: 47.4818}},
	{Info: schema.CountryInfo{ID: 417, Country: "Kyrgyzstan", Iso2: "KG", Iso3: "KGZ", Lat: 41.2044, Long: 74.7661}},
	{Info: schema.CountryInfo{ID: 418, Country: "Laos", Iso2: "LA", Iso3: "LAO", Lat: 19.8563, Long: 102.4955}, Aliases: []string{"Lao People's Democratic Republic"}},
	{Info: schema.CountryInfo{ID: 428, Country: "Latvia", Iso2: "LV", Iso3: "LVA", Lat: 56.8796, Long: 24.6032}},
	{Info: schema.CountryInfo{ID: 422, Country: "Lebanon", Iso2: "LB", Iso3: "LBN", Lat: 33.8547, Long: 35.8623}},
	{Info: schema.CountryInfo{ID: 426, Country: "Lesotho", Iso2: "LS", Iso3: "LSO", Lat: -29.61, Long: 28.2336}},
	{Info: schema.CountryInfo{ID: 430, Country: "Liberia", Iso2: "LR", Iso3: "LBR", Lat: 6.4281, Long: -9.4295}},
	{Info: schema.CountryInfo{ID: 434, Country: "Libya", Iso2: "LY", Iso3: "LBY", Lat: 26.3351, Long: 17.2283}, Aliases: []string{"Libyan Arab Jamahiriya"}},
	{Info: schema.CountryInfo{ID: 438, Country: "Liechtenstein", Iso2: "LI", Iso3: "LIE", Lat: 47.166, Long: 9.5554}},
	{Info: schema.CountryInfo{ID: 440, Country: "Lithuania", Iso2: "LT", Iso3: "LTU", Lat: 55.1694, Long: 23.8813}},
	{Info: schema.CountryInfo{ID: 442, Country: "Luxembourg", Iso2: "LU", Iso3: "LUX", Lat: 49.8153, Long: 6.1296}},
	{Info: schema.CountryInfo{ID: 450, Country: "Madagascar", Iso2: "MG", Iso3: "MDG", Lat: -18.7669, Long: 46.8691}},
	{Info: schema.CountryInfo{ID: 454, Country: "Malawi", Iso2: "MW", Iso3: "MWI", Lat: -13.2543, Long: 34.3015}},
	{Info: schema.CountryInfo{ID: 458, Country: "Malaysia", Iso2: "MY", Iso3: "MYS", Lat: 4.2105, Long: 101.9758}},
	{Info: schema.CountryInfo{ID: 462, Country: "Maldives", Iso2: "MV", Iso3: "MDV", Lat: 3.2028, Long: 73.2207}},
	{Info: schema.CountryInfo{ID: 466, Country: "Mali", Iso2: "ML", Iso3: "MLI", Lat: 17.5707, Long: -3.9962}},
	{Info: schema.CountryInfo{ID: 470, Country: "Malta", Iso2: "MT", Iso3: "MLT", Lat: 35.9375, Long: 14.3754}},
	{Info: schema.CountryInfo{ID: 478, Country: "Mauritania", Iso2: "MR", Iso3: "MRT", Lat: 21.0079, Long: -10.9408}},
	{Info: schema.CountryInfo{ID: 480, Country: "Mauritius", Iso2: "MU", Iso3: "MUS", Lat: -20.3484, Long: 57.5522}},
	{Info: schema.CountryInfo{ID: 484, Country: "Mexico", Iso2: "MX", Iso3: "MEX", Lat: 23.6345, Long: -102.5528}},
	{Info: schema.CountryInfo{ID: 498, Country: "Moldova", Iso2: "MD", Iso3: "MDA", Lat: 47.4116, Long: 28.3699}, Aliases: []string{"Republic of Moldova"}},
	{Info: schema.CountryInfo{ID: 492, Country: "Monaco", Iso2: "MC", Iso3: "MCO", Lat: 43.7384, Long: 7.4246}},
	{Info: schema.CountryInfo{ID: 496, Country: "Mongolia", Iso2: "MN", Iso3: "MNG", Lat: 46.8625, Long: 103.8467}},
	{Info: schema.CountryInfo{ID: 499, Country: "Montenegro", Iso2: "ME", Iso3: "MNE", Lat: 42.7087, Long: 19.3744}},
	{Info: schema.CountryInfo{ID: 504, Country: "Morocco", Iso2: "MA", Iso3: "MAR", Lat: 31.7917, Long: -7.0926}},
	{Info: schema.CountryInfo{ID: 508, Country: "Mozambique", Iso2: "MZ", Iso3: "MOZ", Lat: -18.6657, Long: 35.5296}},
	{Info: schema.CountryInfo{ID: 104, Country: "Myanmar", Iso2: "MM", Iso3: "MMR", Lat: 21.9162, Long: 95.956}, Aliases: []string{"Burma"}},
	{Info: schema.CountryInfo{ID: 516, Country: "Namibia", Iso2: "NA", Iso3: "NAM", Lat: -22.9576, Long: 18.4904}},
	{Info: schema.CountryInfo{ID: 524, Country: "Nepal", Iso2: "NP", Iso3: "NPL", Lat: 28.3949, Long: 84.124}},
	{Info: schema.CountryInfo{ID: 528, Country: "Netherlands", Iso2: "NL", Iso3: "NLD", Lat: 52.1326, Long: 5.2913}, Aliases: []string{"The Netherlands", "Holland"}},
	{Info: schema.CountryInfo{ID: 554, Country: "New Zealand", Iso2: "NZ", Iso3: "NZL", Lat: -40.9006, Long: 174.886}},
	{Info: schema.CountryInfo{ID: 558, Country: "Nicaragua", Iso2: "NI", Iso3: "NIC", Lat: 12.8654, Long: -85.2072}},
	{Info: schema.CountryInfo{ID: 562, Country: "Niger", Iso2: "NE", Iso3: "NER", Lat: 17.6078, Long: 8.0817}},
	{Info: schema.CountryInfo{ID: 566, Country: "Nigeria", Iso2: "NG", Iso3: "NGA", Lat: 9.082, Long: 8.6753}},
	{Info: schema.CountryInfo{ID: 807, Country: "North Macedonia", Iso2: "MK", Iso3: "MKD", Lat: 41.6086, Long: 21.7453}, Aliases: []string{"Macedonia"}},
	{Info: schema.CountryInfo{ID: 578, Country: "Norway", Iso2: "NO", Iso3: "NOR", Lat: 60.472, Long: 8.4689}},
	{Info: schema.CountryInfo{ID: 512, Country: "Oman", Iso2: "OM", Iso3: "OMN", Lat: 21.4735, Long: 55.9754}},
	{Info: schema.CountryInfo{ID: 586, Country: "Pakistan", Iso2: "PK", Iso3: "PAK", Lat: 30.3753, Long: 69.3451}},
	{Info: schema.CountryInfo{ID: 275, Country: "Palestine", Iso2: "PS", Iso3: "PSE", Lat: 31.9522, Long: 35.2332}, Aliases: []string{"West Bank and Gaza", "Palestinian Territory", "State of Palestine"}},
	{Info: schema.CountryInfo{ID: 591, Country: "Panama", Iso2: "PA", Iso3: "PAN", Lat: 8.538, Long: -80.7821}},
	{Info: schema.CountryInfo{ID: 598, Country: "Papua New Guinea", Iso2: "PG", Iso3: "PNG", Lat: -6.315, Long: 143.9555}},
	{Info: schema.CountryInfo{ID: 600, Country: "Paraguay", Iso2: "PY", Iso3: "PRY", Lat: -23.4425, Long: -58.4438}},
	{Info: schema.CountryInfo{ID: 604, Country: "Peru", Iso2: "PE", Iso3: "PER", Lat: -9.19, Long: -75.0152}},
	{Info: schema.CountryInfo{ID: 608, Country: "Philippines", Iso2: "PH", Iso3: "PHL", Lat: 12.8797, Long: 121.774}, Aliases: []string{"The Philippines"}},
	{Info: schema.CountryInfo{ID: 616, Country: "Poland", Iso2: "PL", Iso3: "POL", Lat: 51.9194, Long: 19.1451}},
	{Info: schema.CountryInfo{ID: 620, Country: "Portugal", Iso2: "PT", Iso3: "PRT", Lat: 39.3999, Long: -8.2245}},
	{Info: schema.CountryInfo{ID: 634, Country: "Qatar", Iso2: "QA", Iso3: "QAT", Lat: 25.3548, Long: 51.1839}},
	{Info: schema.CountryInfo{ID: 642, Country: "Romania", Iso2: "RO", Iso3: "ROU", Lat: 45.9432, Long: 24.9668}},
	{Info: schema.CountryInfo{ID: 643, Country: "Russia", Iso2: "RU", Iso3: "RUS", Lat: 61.524, Long: 105.3188}, Aliases: []string{"Russian Federation"}},
	{Info: schema.CountryInfo{ID: 646, Country: "Rwanda", Iso2: "RW", Iso3: "RWA", Lat: -1.9403, Long: 29.8739}},
	{Info: schema.CountryInfo{ID: 659, Country: "Saint Kitts and Nevis", Iso2: "KN", Iso3: "KNA", Lat: 17.3578, Long: -62.783}, Aliases: []string{"St. Kitts and Nevis"}},
	{Info: schema.CountryInfo{ID: 662, Country: "Saint Lucia", Iso2: "LC", Iso3: "LCA", Lat: 13.9094, Long: -60.9789}, Aliases: []string{"St. Lucia"}},
	{Info: schema.CountryInfo{ID: 670, Country: "Saint Vincent and the Grenadines", Iso2: "VC", Iso3: "VCT", Lat: 12.9843, Long: -61.2872}, Aliases: []string{"St. Vincent Grenadines"}},
	{Info: schema.CountryInfo{ID: 674, Country: "San Marino", Iso2: "SM", Iso3: "SMR", Lat: 43.9424, Long: 12.4578}},
	{Info: schema.CountryInfo{ID: 678, Country: "Sao Tome and Principe", Iso2: "ST", Iso3: "STP", Lat: 0.1864, Long: 6.6131}, Aliases: []string{"São Tomé and Príncipe"}},
	{Info: schema.CountryInfo{ID: 682, Country: "Saudi Arabia", Iso2: "SA", Iso3: "SAU", Lat: 23.8859, Long: 45.0792}},
	{Info: schema.CountryInfo{ID: 686, Country: "Senegal", Iso2: "SN", Iso3: "SEN", Lat: 14.4974, Long: -14.4524}},
	{Info: schema.CountryInfo{ID: 688, Country: "Serbia", Iso2: "RS", Iso3: "SRB", Lat: 44.0165, Long: 21.0059}},
	{Info: schema.CountryInfo{ID: 690, Country: "Seychelles", Iso2: "SC", Iso3: "SYC", Lat: -4.6796, Long: 55.492}},
	{Info: schema.CountryInfo{ID: 694, Country: "Sierra Leone", Iso2: "SL", Iso3: "SLE", Lat: 8.4606, Long: -11.7799}},
	{Info: schema.CountryInfo{ID: 702, Country: "Singapore", Iso2: "SG", Iso3: "SGP", Lat: 1.3521, Long: 103.8198}},
	{Info: schema.CountryInfo{ID: 703, Country: "Slovakia", Iso2: "SK", Iso3: "SVK", Lat: 48.669, Long: 19.699}},
	{Info: schema.CountryInfo{ID: 705, Country: "Slovenia", Iso2: "SI", Iso3: "SVN", Lat: 46.1512, Long: 14.9955}},
	{Info: schema.CountryInfo{ID: 706, Country: "Somalia", Iso2: "SO", Iso3: "SOM", Lat: 5.1521, Long: 46.1996}},
	{Info: schema.CountryInfo{ID: 710, Country: "South Africa", Iso2: "ZA", Iso3: "ZAF", Lat: -30.5595, Long: 22.9375}},
	{Info: schema.CountryInfo{ID: 728, Country: "South Sudan", Iso2: "SS", Iso3: "SSD", Lat: 6.877, Long: 31.307}},
	{Info: schema.CountryInfo{ID: 724, Country: "Spain", Iso2: "ES", Iso3: "ESP", Lat: 40.4637, Long: -3.7492}},
	{Info: schema.CountryInfo{ID: 144, Country: "Sri Lanka", Iso2: "LK", Iso3: "LKA", Lat: 7.8731, Long: 80.7718}},
	{Info: schema.CountryInfo{ID: 729, Country: "Sudan", Iso2: "SD", Iso3: "SDN", Lat: 12.8628, Long: 30.2176}},
	{Info: schema.CountryInfo{ID: 740, Country: "Suriname", Iso2: "SR", Iso3: "SUR", Lat: 3.9193, Long: -56.0278}},
	{Info: schema.CountryInfo{ID: 752, Country: "Sweden", Iso2: "SE", Iso3: "SWE", Lat: 60.1282, Long: 18.6435}},
	{Info: schema.CountryInfo{ID: 756, Country: "Switzerland", Iso2: "CH", Iso3: "CHE", Lat: 46.8182, Long: 8.2275}},
	{Info: schema.CountryInfo{ID: 760, Country: "Syria", Iso2: "SY", Iso3: "SYR", Lat: 34.8021, Long: 38.9968}, Aliases: []string{"Syrian Arab Republic"}},
	{Info: schema.CountryInfo{ID: 158, Country: "Taiwan", Iso2: "TW", Iso3: "TWN", Lat: 23.6978, Long: 120.9605}, Aliases: []string{"Taiwan*", "Taipei and environs"}},
	{Info: schema.CountryInfo{ID: 762, Country: "Tajikistan", Iso2: "TJ", Iso3: "TJK", Lat: 38.861, Long: 71.2761}},
	{Info: schema.CountryInfo{ID: 834, Country: "Tanzania", Iso2: "TZ", Iso3: "TZA", Lat: -6.369, Long: 34.8888}, Aliases: []string{"United Republic of Tanzania"}},
	{Info: schema.CountryInfo{ID: 764, Country: "Thailand", Iso2: "TH", Iso3: "THA", Lat: 15.87, Long: 100.9925}},
	{Info: schema.CountryInfo{ID: 626, Country: "Timor-Leste", Iso2: "TL", Iso3: "TLS", Lat: -8.8742, Long: 125.7275}, Aliases: []string{"East Timor"}},
	{Info: schema.CountryInfo{ID: 768, Country: "Togo", Iso2: "TG", Iso3: "TGO", Lat: 8.6195, Long: 0.8248}},
	{Info: schema.CountryInfo{ID: 780, Country: "Trinidad and Tobago", Iso2: "TT", Iso3: "TTO", Lat: 10.6918, Long: -61.2225}},
	{Info: schema.CountryInfo{ID: 788, Country: "Tunisia", Iso2: "TN", Iso3: "TUN", Lat: 33.8869, Long: 9.5375}},
	{Info: schema.CountryInfo{ID: 792, Country: "Turkey", Iso2: "TR", Iso3: "TUR", Lat: 38.9637, Long: 35.2433}},
	{Info: schema.CountryInfo{ID: 840, Country: "USA", Iso2: "US", Iso3: "USA", Lat: 37.0902, Long: -95.7129}, Aliases: []string{"US", "United States", "United States of America"}},
	{Info: schema.CountryInfo{ID: 800, Country: "Uganda", Iso2: "UG", Iso3: "UGA", Lat: 1.3733, Long: 32.2903}},
	{Info: schema.CountryInfo{ID: 804, Country: "Ukraine", Iso2: "UA", Iso3: "UKR", Lat: 48.3794, Long: 31.1656}},
	{Info: schema.CountryInfo{ID: 784, Country: "UAE", Iso2: "AE", Iso3: "ARE", Lat: 23.4241, Long: 53.8478}, Aliases: []string{"United Arab Emirates"}},
	{Info: schema.CountryInfo{ID: 826, Country: "UK", Iso2: "GB", Iso3: "GBR", Lat: 55.3781, Long: -3.436}, Aliases: []string{"United Kingdom", "Great Britain"}},
	{Info: schema.CountryInfo{ID: 858, Country: "Uruguay", Iso2: "UY", Iso3: "URY", Lat: -32.5228, Long: -55.7658}},
	{Info: schema.CountryInfo{ID: 860, Country: "Uzbekistan", Iso2: "UZ", Iso3: "UZB", Lat: 41.3775, Long: 64.5853}},
	{Info: schema.CountryInfo{ID: 862, Country: "Venezuela", Iso2: "VE", Iso3: "VEN", Lat: 6.4238, Long: -66.5897}},
	{Info: schema.CountryInfo{ID: 704, Country: "Vietnam", Iso2: "VN", Iso3: "VNM", Lat: 14.0583, Long: 108.2772}, Aliases: []string{"Viet Nam"}},
	{Info: schema.CountryInfo{ID: 732, Country: "Western Sahara", Iso2: "EH", Iso3: "ESH", Lat: 24.2155, Long: -12.8858}},
	{Info: schema.CountryInfo{ID: 887, Country: "Yemen", Iso2: "YE", Iso3: "YEM", Lat: 15.5527, Long: 48.5164}},
	{Info: schema.CountryInfo{ID: 894, Country: "Zambia", Iso2: "ZM", Iso3: "ZMB", Lat: -13.1339, Long: 27.8493}},
	{Info: schema.CountryInfo{ID: 716, Country: "Zimbabwe", Iso2: "ZW", Iso3: "ZWE", Lat: -19.0154, Long: 29.1549}},
}

func init() {
	for i := range Countries {
		info := &Countries[i].Info
		if info.Flag == "" {
			info.Flag = fmt.Sprintf("%s/%s.png", flagBaseURL, strings.ToLower(info.Iso2))
		}
	}
}

// NameKey normalizes a country or province name for lookups and
// cross-table alignment: lower case, trimmed, stray punctuation removed.
func NameKey(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("*", "", ".", "", ",", "").Replace(key)
	return strings.Join(strings.Fields(key), " ")
}
