package lexicon

// Keyword polarity sets for the lexical scorer.
var PositiveWords = map[string]bool{
	"ambiance": true,
	"baraka": true,
	"barcha behi": true,
	"behi": true,
	"behia": true,
	"bnin": true,
	"bravo": true,
	"chokr": true,
	"concert": true,
	"extra": true,
	"farhan": true,
	"farhana": true,
	"festival": true,
	"fete": true,
	"fort": true,
	"habibi": true,
	"habibti": true,
	"hafla": true,
	"hamdoullah": true,
	"hbel": true,
	"heyel": true,
	"hlou": true,
	"hlowa": true,
	"hob": true,
	"jaw": true,
	"jmil": true,
	"jmila": true,
	"kwi": true,
	"lazem": true,
	"mabrouk": true,
	"merci": true,
	"mezyen": true,
	"mlih": true,
	"momtez": true,
	"najeh": true,
	"nar": true,
	"nchourek": true,
	"nemchiwlou": true,
	"nheb": true,
	"nhebek": true,
	"nhebkom": true,
	"raia": true,
	"rawaa": true,
	"rebeh": true,
	"saha": true,
	"skhoun": true,
	"super": true,
	"tahya": true,
	"temem": true,
	"top": true,
	"worth it": true,
	"yaaychek": true,
	"yestehel": true,
	"zin": true,
	"zwina": true,
}

var NegativeWords = map[string]bool{
	"aib": true,
	"arnaque": true,
	"bruit": true,
	"deception": true,
	"dhaif": true,
	"dommage": true,
	"fawdha": true,
	"fdhiha": true,
	"ghali": true,
	"ghyab": true,
	"hchouma": true,
	"hzin": true,
	"hzina": true,
	"ikalek": true,
	"kalekni": true,
	"karhba": true,
	"kass": true,
	"kassat": true,
	"khab amli": true,
	"kharba": true,
	"khayba": true,
	"khayeb": true,
	"machakel": true,
	"mafamech": true,
	"mahbous": true,
	"makanch": true,
	"metghachech": true,
	"mochkla": true,
	"mokref": true,
	"mouch behi": true,
	"mouch mlih": true,
	"msakra": true,
	"mzaej": true,
	"nkes": true,
	"nصab": true,
	"panne": true,
	"retard": true,
	"sale": true,
	"skandal": true,
	"sot ali": true,
	"taab": true,
	"taaba": true,
	"taatlet": true,
	"takhir": true,
	"voleur": true,
	"wahel": true,
	"wsekh": true,
	"yekref": true,
	"yesrek": true,
	"zaalet": true,
	"zahma": true,
}

var NeutralWords = map[string]bool{
	"alech": true,
	"ardh": true,
	"chkoun": true,
	"chnowa": true,
	"corniche": true,
	"film": true,
	"ghodwa": true,
	"khniss": true,
	"kifech": true,
	"lbereh": true,
	"lyoum": true,
	"maaredh": true,
	"match": true,
	"mestir": true,
	"monastir": true,
	"nadwa": true,
	"saa": true,
	"stade": true,
	"tawa": true,
	"wakteh": true,
	"win": true,
}

// Intensifiers multiply the lexical score. Values below 1 attenuate.
var Intensifiers = map[string]float64{
	"barcha": 1.5,
	"yesser": 1.5,
	"aalekher": 1.8,
	"bel kol": 1.6,
	"jaw": 1.3,
	"chwaya": 0.7,
	"mouch barcha": 0.6,
}

// Negators dampen and flip the lexical score.
var Negators = map[string]bool{
	"abadan": true,
	"bla": true,
	"jamais": true,
	"la": true,
	"ma": true,
	"mafamech": true,
	"makanch": true,
	"mech": true,
	"mouch": true,
	"non": true,
}
