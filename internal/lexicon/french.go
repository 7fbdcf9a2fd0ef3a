package lexicon

// FrenchWords maps French vocabulary to Darija equivalents.
var FrenchWords = map[string]string{
	"plage": "bhar",
	"mer": "bhar",
	"beach": "bhar",
	"ville": "mdina",
	"centre": "west bled",
	"rue": "chera",
	"quartier": "houma",
	"maison": "dar",
	"restaurant": "resto",
	"café": "kahwa",
	"hôtel": "hotel",
	"mosquée": "jemaa",
	"marché": "souk",
	"gare": "mahata",
	"aéroport": "matar",
	"hôpital": "sbitar",
	"école": "madrsa",
	"université": "fac",
	"soleil": "chams",
	"temps": "jaw",
	"weather": "takes",
	"chaud": "skhoun",
	"froid": "bard",
	"pluie": "mtar",
	"vent": "rih",
	"beau": "mezyen",
	"belle": "mezyena",
	"magnifique": "rawa",
	"superbe": "rawa",
	"joli": "mezyen",
	"jolie": "mezyena",
	"bien": "behi",
	"bon": "behi",
	"bonne": "behia",
	"mauvais": "khayeb",
	"mauvaise": "khayba",
	"content": "farhan",
	"contente": "farhana",
	"heureux": "farhan",
	"heureuse": "farhana",
	"triste": "hzin",
	"fatigué": "taab",
	"fatiguée": "taaba",
	"énervé": "metghachech",
	"fâché": "metghachech",
	"super": "hbel",
	"génial": "heyel yesser",
	"excellent": "momtez",
	"parfait": "heyel",
	"nul": "khayeb",
	"horrible": "khayeb yesser",
	"terrible": "fdhiha",
	"manger": "neklou",
	"boire": "nochreb",
	"dormir": "norked",
	"travailler": "nekhdem",
	"aller": "nemchi",
	"venir": "nji",
	"voir": "nchouf",
	"regarder": "netfarej",
	"attendre": "nestana",
	"partir": "nemchi",
	"rentrer": "narja",
	"sortir": "nokhrej",
	"voiture": "karhba",
	"bus": "kar",
	"taxi": "taxi",
	"train": "metro",
	"trafic": "zahma",
	"embouteillage": "zahma",
	"circulation": "zahma",
	"route": "trik",
	"problème": "mochkla",
	"panne": "panne",
	"coupure": "kass",
	"électricité": "dhaw",
	"internet": "internet",
	"connexion": "connexion",
	"aujourd'hui": "lyoum",
	"demain": "ghodwa",
	"hier": "berah",
	"maintenant": "tawa",
	"toujours": "dima",
	"jamais": "abeden",
	"souvent": "barcha",
	"beaucoup": "barcha",
	"peu": "chwaya",
	"très": "barcha",
	"gens": "ness",
	"personnes": "ness",
	"ami": "sahbi",
	"amie": "sahebti",
	"frère": "khouya",
	"sœur": "okhti",
	"famille": "ayla",
	"enfants": "sghar",
	"homme": "rajel",
	"femme": "mra",
	"tortue": "soulehfet",
	"sauvée": "monktha",
	"vaccination": "talkih",
	"gratuite": "blech",
	"chats": "ktates",
	"chiens": "klab",
	"campagne": "hemla",
	"inquiète": "yhazen",
	"autorités": "masoulin",
	"tunisiennes": "twensa",
	"coupures": "kassen",
	"zones": "manatek",
	"concernées": "eli ihemha",
	"dimanche": "el had",
	"lundi": "etnin",
	"mardi": "ethlatha",
	"mercredi": "elarbaa",
	"jeudi": "elkhmis",
	"vendredi": "ejjomaa",
	"samedi": "essebt",
	"et": "w",
	"à": "fi",
	"ce": "hadha",
	"cet": "hadha",
	"cette": "hedhi",
	"ces": "hedhom",
	"dans": "fi",
	"parc": "hadika",
	"rentre": "yarja",
	"chaque": "koll",
	"fois": "marra",
	"je": "ani",
	"vois": "nchouf",
	"quoi": "chnoua",
	"comment": "kifech",
	"pourquoi": "alech",
	"où": "win",
	"quand": "waktech",
	"qui": "chkoun",
	"chose": "haja",
	"jour": "nhar",
	"nuit": "lil",
	"matin": "sbeh",
	"soir": "achiya",
	"festival": "festival",
	"match": "match",
	"foot": "koura",
	"football": "koura",
	"tourisme": "siyeha",
	"touriste": "siyeha",
	"vacances": "otla",
	"protéger": "nahmiw",
	"proteger": "nahmiw",
	"protège": "nahmi",
	"protegeons": "nahmiwha",
	"notre": "mtaana",
	"nos": "mtaana",
	"votre": "mtaakom",
	"vos": "mtaakom",
	"leur": "mtaahom",
	"leurs": "mtaahom",
	"mon": "mtaai",
	"ma": "mtaai",
	"mes": "mtaai",
	"ton": "mtaak",
	"ta": "mtaak",
	"tes": "mtaak",
	"son": "mtaah",
	"sa": "mtaah",
	"ses": "mtaahom",
	"c'est": "howa",
	"cest": "howa",
	"c'était": "ken",
	"cetait": "ken",
	"vie": "hayet",
	"la vie": "el hayet",
	"mort": "mott",
	"nature": "tabiaa",
	"environnement": "biaa",
	"pollution": "talawoth",
	"le": "el",
	"la": "el",
	"les": "el",
	"un": "wahed",
	"une": "wahda",
	"des": "",
	"il": "houwa",
	"elle": "hiya",
	"ils": "houma",
	"elles": "houma",
	"nous": "ahna",
	"vous": "entouma",
	"on": "ahna",
	"est": "howa",
	"sont": "houma",
	"suis": "ena",
	"es": "enti",
	"sommes": "ahna",
	"êtes": "entouma",
	"avoir": "andou",
	"ai": "andi",
	"as": "andek",
	"a": "andou",
	"avons": "andna",
	"avez": "andkom",
	"ont": "andhom",
	"faire": "naamel",
	"fait": "aamel",
	"aimer": "nheb",
	"aime": "nheb",
}

// FullContractions are elided expressions translated as a unit, applied in
// order so longer forms win before their heads (c'est-à-dire before c'est).
var FullContractions = []Rewrite{
	{"d'électricité", "dhaw"},
	{"d'electricité", "dhaw"},
	{"d'electricite", "dhaw"},
	{"d'internet", "internet"},
	{"d'eau", "ma"},
	{"l'eau", "el ma"},
	{"l'école", "el madrsa"},
	{"l'hôpital", "el sbitar"},
	{"l'aéroport", "el matar"},
	{"l'hôtel", "el hotel"},
	{"l'université", "el fac"},
	{"l'église", "el knisa"},
	{"l'entrée", "el dkhoul"},
	{"l'événement", "el event"},
	{"aujourd'hui", "lyoum"},
	{"d'accord", "mwefek"},
	{"quelqu'un", "wahed"},
	{"quelqu'une", "wahda"},
	{"c'est-à-dire", "yaani"},
	{"n'est-ce pas", "mouch keka"},
	{"s'il vous plaît", "aychek"},
	{"s'il te plaît", "aychek"},
	{"c'est", "howa"},
	{"c'était", "ken"},
}

// SimpleContractions split any remaining elided form into two tokens.
var SimpleContractions = []Rewrite{
	{"d'", "de "},
	{"l'", "el "},
	{"j'", "ena "},
	{"m'", "m "},
	{"t'", "t "},
	{"s'", "s "},
	{"n'", "n "},
	{"qu'", "qu "},
}
