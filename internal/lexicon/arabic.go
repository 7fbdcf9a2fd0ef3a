package lexicon

// ArabicLetters is the character-level fallback transliteration table.
// Diacritics map to short vowels or nothing.
var ArabicLetters = map[rune]string{
	'ا': "a",
	'أ': "a",
	'إ': "i",
	'آ': "a",
	'ب': "b",
	'ت': "t",
	'ث': "th",
	'ج': "j",
	'ح': "h",
	'خ': "kh",
	'د': "d",
	'ذ': "dh",
	'ر': "r",
	'ز': "z",
	'س': "s",
	'ش': "ch",
	'ص': "s",
	'ض': "dh",
	'ط': "t",
	'ظ': "dh",
	'ع': "a",
	'غ': "gh",
	'ف': "f",
	'ق': "k",
	'ك': "k",
	'ل': "l",
	'م': "m",
	'ن': "n",
	'ه': "h",
	'ة': "a",
	'و': "w",
	'ي': "y",
	'ى': "a",
	'ء': "",
	'ئ': "i",
	'ؤ': "ou",
	'َ': "a",
	'ِ': "i",
	'ُ': "ou",
	'ً': "an",
	'ٍ': "in",
	'ٌ': "on",
	'ْ': "",
	'ّ': "",
}

// ArabicWords maps whole Arabic-script words to their Darija-Latin rendering.
var ArabicWords = map[string]string{
	"جميل": "mezyan",
	"جميلة": "mezyaa",
	"جميله": "mezyaa",
	"رائع": "heyel",
	"رائعة": "heyla",
	"رائعه": "heyla",
	"ممتاز": "momtez",
	"سيء": "khayeb",
	"خايب": "khayeb",
	"مشكلة": "mochkla",
	"مشكله": "mochkla",
	"مشاكل": "machakel",
	"حزين": "hzin",
	"حزينة": "hzina",
	"حزينه": "hzina",
	"فرحان": "farhan",
	"فرحانة": "farhana",
	"فرحانه": "farhana",
	"سعيد": "farhan",
	"سعيدة": "farhana",
	"سعيده": "farhana",
	"تعب": "taab",
	"تعبة": "taaba",
	"تعبه": "taaba",
	"تعبان": "taaban",
	"تعبانة": "taabana",
	"تعبانه": "taabana",
	"اليوم": "lyoum",
	"غدوة": "ghodwa",
	"غدا": "ghodwa",
	"البارح": "lbereh",
	"أمس": "lbereh",
	"توا": "tawa",
	"الآن": "tawa",
	"دايما": "dima",
	"دائما": "dima",
	"برشا": "barcha",
	"كثير": "barcha",
	"ياسر": "yesser",
	"شوية": "chwaya",
	"قليل": "chwaya",
	"يوم": "nhar",
	"ليل": "lil",
	"صباح": "sbeh",
	"مساء": "achiya",
	"البحر": "bhar",
	"الشاطئ": "chatt",
	"المدينة": "mdina",
	"البلاد": "bled",
	"الحومة": "houma",
	"الدار": "dar",
	"المنزل": "dar",
	"السوق": "souk",
	"الجامع": "jemaa",
	"المطار": "matar",
	"المحطة": "mahata",
	"السبيطار": "sbitar",
	"المستشفى": "sbitar",
	"المدرسة": "madrsa",
	"الجامعة": "fac",
	"الكورنيش": "corniche",
	"الملعب": "stade",
	"الرباط": "ribat",
	"قصر": "ksar",
	"المركب": "morakeb",
	"الطريق": "trik",
	"المنستير": "mestir",
	"المستير": "mestir",
	"منستير": "mestir",
	"المطعم": "resto",
	"المقهى": "kahwa",
	"الناس": "ness",
	"ناس": "ness",
	"صاحبي": "sahbi",
	"صديق": "sahbi",
	"صديقة": "sahebti",
	"خويا": "khouya",
	"أخ": "khou",
	"أختي": "okhti",
	"أخت": "okht",
	"العايلة": "ayla",
	"عائلة": "ayla",
	"الصغار": "sghar",
	"أطفال": "sghar",
	"راجل": "rajel",
	"رجل": "rajel",
	"مرا": "mra",
	"امرأة": "mra",
	"أب": "baba",
	"أم": "ommi",
	"ابن": "wled",
	"ابنة": "bent",
	"جد": "jed",
	"جدة": "jeda",
	"الكرهبة": "karhba",
	"كرهبة": "karhba",
	"السيارة": "karhba",
	"الكار": "kar",
	"الحافلة": "kar",
	"الطاكسي": "taxi",
	"الميترو": "metro",
	"القطار": "metro",
	"الطائرة": "tayara",
	"زحمة": "zahma",
	"الزحمة": "zahma",
	"الجو": "jaw",
	"جو": "jaw",
	"الطقس": "jaw",
	"الشمس": "chams",
	"شمس": "chams",
	"سخون": "skhoun",
	"حار": "skhoun",
	"برد": "bard",
	"بارد": "bard",
	"مطر": "mtar",
	"ريح": "rih",
	"ناكل": "nekel",
	"أكل": "mekla",
	"نشرب": "nochreb",
	"شرب": "chrab",
	"نرقد": "norked",
	"نوم": "rked",
	"نخدم": "nekhdem",
	"عمل": "khedma",
	"العمل": "khedma",
	"نمشي": "nemchi",
	"نجي": "nji",
	"نشوف": "nchouf",
	"نتفرج": "netfarej",
	"نستنى": "nestana",
	"نرجع": "narja",
	"نخرج": "nokhrej",
	"شنوة": "chnoua",
	"ماذا": "chnoua",
	"كيفاش": "kifech",
	"كيف": "kifech",
	"علاش": "alech",
	"لماذا": "alech",
	"وين": "win",
	"أين": "win",
	"وقتاش": "wakteh",
	"متى": "wakteh",
	"شكون": "chkoun",
	"من": "men",
	"شيء": "chy",
	"وزين": "w mezyan",
	"التأخير": "tawkhir",
	"تذمّوا": "tdhamrou",
	"فولكلور": "folklore",
	"واحد": "wahed",
	"اثنان": "zouz",
	"ثلاثة": "thletha",
	"أربعة": "arbaa",
	"خمسة": "khamsa",
	"ستة": "setta",
	"سبعة": "sebaa",
	"ثمانية": "thmenia",
	"تسعة": "tesaa",
	"عشرة": "achra",
	"غرفة": "bit",
	"غرفه": "bit",
	"مطبخ": "koujina",
	"حمام": "hamem",
	"باب": "beb",
	"نافذة": "chobek",
	"سرير": "srir",
	"كرسي": "korsi",
	"طاولة": "tawle",
	"مفتاح": "mefteh",
	"نار": "nar",
	"ثلاجة": "frigidaire",
	"خبز": "khobz",
	"ماء": "ma",
	"شاي": "tey",
	"قهوة": "kahwa",
	"لحم": "lham",
	"دجاج": "djej",
	"سمك": "hout",
	"ملح": "melh",
	"سكر": "sokkar",
	"فاكهة": "ghalla",
	"تفاح": "toffeh",
	"برتقال": "bordgen",
	"موز": "banane",
	"يناير": "janvier",
	"جانفي": "janvier",
	"فبراير": "fevrier",
	"فيفري": "fevrier",
	"مارس": "mars",
	"أبريل": "avril",
	"افريل": "avril",
	"ماي": "mai",
	"مايو": "mai",
	"يونيو": "juin",
	"جوان": "juin",
	"يوليو": "juillet",
	"جويلية": "juillet",
	"أغسطس": "aout",
	"اوت": "aout",
	"سبتمبر": "septembre",
	"أكتوبر": "octobre",
	"اكتوبر": "octobre",
	"نوفمبر": "novembre",
	"ديسمبر": "decembre",
	"حاسوب": "pc",
	"هاتف": "portable",
	"إنترنت": "internet",
	"صورة": "soura",
	"حفلة": "hafla",
	"حفله": "hafla",
	"عرض": "ardh",
	"مباراة": "match",
	"مباراه": "match",
	"كرة": "koura",
	"كره": "koura",
	"فيلم": "film",
	"مسرح": "masrah",
	"موسيقى": "mousika",
	"فن": "fann",
	"ثقافة": "thakafa",
	"سياحة": "siyeha",
	"عطلة": "otla",
	"مهرجان": "mahrejen",
	"تنظيم": "tandhim",
	"تأخير": "takhir",
	"والله": "wallah",
	"يعني": "yaani",
	"برك": "bark",
	"زعمة": "zaama",
	"باهي": "behi",
	"صحة": "saha",
	"عسلامة": "aslema",
	"الخير": "khir",
	"ليلة": "lila",
	"مبروك": "mabrouk",
	"الدنيا": "denya",
	"حلوة": "hlowa",
	"حلوه": "hlowa",
	"حلو": "hlou",
	"معبي": "maabi",
	"معبّي": "maabi",
	"الافتتاح": "eftiteh",
	"الكبير": "kbir",
	"كبير": "kbir",
	"متاع": "mtaa",
	"صراحة": "sraha",
	"التوقعات": "tawakkoaat",
	"تذكير": "tadhkir",
	"عند": "and",
	"على": "ala",
	"الساعة": "saa",
	"عامر": "amer",
	"قوية": "kwiya",
	"قويه": "kwiya",
	"قوي": "kwi",
	"تشجع": "tchajaa",
	"بكري": "bekri",
	"جديدة": "jdida",
	"جديده": "jdida",
	"جديد": "jdid",
	"الإضاءة": "dhaw",
	"المقابلة": "match",
	"تعطلت": "taatlet",
	"الطبخ": "tabkh",
	"المركزي": "markazi",
	"خضر": "khodhra",
	"طازجة": "tazja",
	"طازجه": "tazja",
	"طماطم": "tmatem",
	"بنينة": "bnina",
	"بنينه": "bnina",
	"بنين": "bnin",
	"عروض": "oroudh",
	"البهجة": "behja",
	"الشارع": "cheraa",
	"قدام": "koddem",
	"التصاور": "tsawer",
	"سياحي": "siyehi",
	"منظم": "mnadhem",
	"مزيان": "mezyen",
	"الصوت": "sot",
	"القاعة": "salla",
	"مزعج": "ikalek",
	"جمعة": "jomaa",
	"ثقافية": "thakafiya",
	"ثقافيه": "thakafiya",
	"معرض": "maaredh",
	"كتب": "kotob",
	"صغير": "sghir",
	"صغيرة": "sghira",
	"صغيره": "sghira",
	"للكورنيش": "lel_corniche",
	"الغروب": "ghroub",
	"هادي": "hedi",
	"زين": "zin",
	"المسرحي": "masrahi",
	"ضعيف": "dhaif",
	"شوي": "chwi",
	"المنطقة": "mantka",
	"طرقات": "torkaat",
	"صيانة": "siyana",
	"المرور": "morour",
	"أخبار": "akhbar",
	"سريعة": "sriaa",
	"سريعه": "sriaa",
	"ندوة": "nadwa",
	"ندوه": "nadwa",
	"العلوم": "oloum",
	"مشاريع": "macharia",
	"جامعة": "jemaa",
	"صوره": "soura",
	"المستوى": "mostwa",
	"كلية": "koliya",
	"نقص": "noks",
	"الطلبة": "talaba",
	"أيام": "ayem",
	"سينما": "cinema",
	"تحت": "taht",
	"النجوم": "njoum",
	"السهرة": "sahra",
	"طويلة": "twila",
	"طويله": "twila",
	"طويل": "twil",
	"الفرقة": "ferka",
	"المودرن": "moderna",
	"للاعبين": "lel_laabin",
	"أول": "awel",
	"رسمي": "rasmi",
	"حركة": "haraka",
	"حركه": "haraka",
	"رياضية": "riyadhiya",
	"الشباب": "chabeb",
	"حول": "hawel",
	"تاريخ": "tarikh",
	"آخر": "akher",
	"العلمية": "ilmiya",
	"علمية": "ilmiya",
	"علميه": "ilmiya",
	"موعدنا": "mawidna",
	"جمهور": "jomhour",
	"الحبيب": "hbib",
	"نغني": "nghanni",
	"الموسم": "mawsem",
	"تخفيض": "takhfidh",
	"فندق": "fondok",
	"موقع": "mawkaa",
	"خدمات": "khadamet",
	"مسابقة": "mosabka",
	"مسابقه": "mosabka",
	"جمال": "jamel",
	"فوج": "fawj",
	"رياضيه": "riyadhiya",
	"التونسية": "tounsiya",
	"التونسيه": "tounsiya",
	"جهة": "jiha",
	"قلب": "kalb",
	"أجواء": "ajwaa",
	"العيد": "eid",
	"كبار": "kbar",
	"تفاصيل": "tafasil",
	"ناجح": "najeh",
	"المسؤول": "masoul",
	"المسءول": "masoul",
	"النقل": "nakl",
	"معاناة": "mouanet",
	"المسافرين": "msafrin",
	"غياب": "ghyab",
	"رحلات": "rahlat",
	"موش": "mouch",
	"قد": "ked",
	"في": "fi",
	"و": "w",
	"ما": "ma",
	"هي": "hiya",
	"هو": "houwa",
	"كان": "ken",
	"كانت": "kenet",
	"فيه": "fih",
	"فيها": "fiha",
	"عليه": "alih",
	"عليها": "aliha",
	"منه": "menou",
	"منها": "menha",
	"إلى": "lel",
	"مع": "maa",
	"بعد": "baad",
	"قبل": "kabl",
	"بين": "bin",
	"كل": "kol",
	"بعض": "baadh",
	"هذا": "hadha",
	"هذه": "hedhi",
	"ذلك": "dhalik",
	"هنا": "hne",
	"هناك": "ghadika",
	"الذي": "eli",
	"التي": "eli",
	"اللي": "eli",
	"موكنين": "moknin",
	"بسبب": "bisebab",
}

// ArabicPrefixes lists attachable clitic prefixes, longest first. Order
// matters: a two-letter prefix must win over its one-letter head.
var ArabicPrefixes = []string{
	"وال", "بال", "فال", "كال", "لل", "وب", "ول", "ال", "و", "ب", "ل", "ف", "ك",
}

// PrefixToLatin gives the Latin fragment contributed by a separated prefix.
// The bare definite article contributes nothing.
var PrefixToLatin = map[string]string{
	"وال": "wel_",
	"بال": "bel_",
	"لل": "lel_",
	"فال": "fel_",
	"كال": "kel_",
	"وب": "w_b",
	"ول": "w_l",
	"ال": "",
	"و": "w_",
	"ب": "b_",
	"ل": "l_",
	"ف": "f_",
	"ك": "k_",
}

// ArabicMonths and FrenchMonths feed the protected-span date patterns.
var ArabicMonths = []string{
	"يناير",
	"جانفي",
	"جانفييه",
	"فبراير",
	"فيفري",
	"مارس",
	"أبريل",
	"افريل",
	"ماي",
	"مايو",
	"يونيو",
	"جوان",
	"يوليو",
	"جويلية",
	"أغسطس",
	"اوت",
	"سبتمبر",
	"سبتامبر",
	"أكتوبر",
	"اكتوبر",
	"نوفمبر",
	"نوفامبر",
	"ديسمبر",
	"ديسامبر",
}

var FrenchMonths = []string{
	"janvier",
	"fevrier",
	"février",
	"mars",
	"avril",
	"mai",
	"juin",
	"juillet",
	"aout",
	"août",
	"septembre",
	"octobre",
	"novembre",
	"decembre",
	"décembre",
}
