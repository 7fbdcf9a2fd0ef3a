package lexicon

// DigitRewrites converts digit-as-letter conventions. The two-letter "5"
// rewrite must run first so its output is not reinterpreted by later rules.
var DigitRewrites = []Rewrite{
	{"5", "kh"},
	{"9", "k"},
	{"7", "h"},
	{"3", "a"},
	{"2", "a"},
	{"8", "gh"},
	{"6", "t"},
}

// Variants folds alternative surface spellings onto one canonical form.
var Variants = map[string]string{
	"ta7et": "tahet",
	"7ala": "hala",
	"7lila": "hlila",
	"3alekher": "alekher",
	"7ata": "hata",
	"wa5ret": "wakhret",
	"9a3din": "kadin",
	"na7kiw": "nahkiw",
	"3la": "ala",
	"m3abba": "maaba",
	"3ib": "eib",
	"3malet": "amelt",
	"9ass": "kass",
	"ye5y": "yekhy",
	"3alya": "alya",
	"9wi": "kwi",
	"tet3eda": "tetada",
	"3aslema": "aslema",
	"raw3a": "rawaa",
	"raw3aa": "rawaa",
	"rou3a": "rawaa",
	"barcha": "barcha",
	"barchaa": "barcha",
	"bercha": "barcha",
	"barsha": "barcha",
	"barshaa": "barcha",
	"7ajet": "hajet",
	"7weyej": "hajet",
	"7aja": "haja",
	"5ouya": "khouya",
	"5oya": "khouya",
	"kifech": "kifech",
	"kifeh": "kifech",
	"kifek": "kifech",
	"chneya": "chneya",
	"chnoua": "chnoua",
	"chnowa": "chnowa",
	"chnya": "chnya",
	"wallahi": "wallah",
	"walahi": "wallah",
	"wlh": "wallah",
	"wlhi": "wallah",
	"9ahwa": "kahwa",
	"9ahaoua": "kahwa",
	"m3a": "maa",
	"b7ar": "bhar",
	"ba7ar": "bhar",
	"thama": "fama",
	"thamma": "fama",
	"famma": "fama",
	"jaw": "jaw",
	"jow": "jaw",
	"ness": "ness",
	"nas": "ness",
	"naas": "ness",
	"sa7": "saha",
	"sa7a": "saha",
	"mashi": "machi",
	"ya3ni": "yaani",
	"choufe": "chouf",
	"shouf": "chouf",
	"ra7": "mcha",
	"msha": "mcha",
	"mechi": "mcha",
	"elyoum": "lyoum",
	"lyom": "lyoum",
	"leyouma": "lyoum",
	"monastir": "mestir",
	"elmonstir": "mestir",
	"el monastir": "mestir",
	"5niss": "khniss",
	"khnis": "khniss",
	"usmonastir": "us mestir",
	"steg": "steg",
}

// KeepAsIs are proper nouns and brand terms left untouched.
var KeepAsIs = map[string]bool{
	"facebook": true,
	"instagram": true,
	"mestir": true,
	"steg": true,
	"twitter": true,
	"us": true,
}
