package lookup

import "github.com/tijeane/quran-learning/internal/models"

// functionWordPhrases holds curated usage phrases for function words.
// A single verse citation teaches a preposition or particle poorly; a
// handful of idiomatic patterns works better. Slice order is display order.
var functionWordPhrases = map[string][]models.Phrase{
	"من": {
		{Arabic: "من الله", Transliteration: "min Allah", English: "from Allah", Context: "Divine origin or source", Category: "theological"},
		{Arabic: "من قبل", Transliteration: "min qabl", English: "from before / previously", Context: "Temporal reference", Category: "temporal"},
		{Arabic: "من ربكم", Transliteration: "min rabbikum", English: "from your Lord", Context: "Divine guidance or command", Category: "theological"},
		{Arabic: "من كل شيء", Transliteration: "min kulli shay'", English: "from everything", Context: "Comprehensive scope", Category: "spatial"},
		{Arabic: "من دون الله", Transliteration: "min duni Allah", English: "besides Allah", Context: "Exclusivity of worship", Category: "theological"},
		{Arabic: "من بعد", Transliteration: "min ba'd", English: "after / following", Context: "Sequential time reference", Category: "temporal"},
		{Arabic: "من أجل", Transliteration: "min ajl", English: "for the sake of", Context: "Purpose or cause", Category: "relational"},
	},
	"في": {
		{Arabic: "في السماوات", Transliteration: "fi's-samawat", English: "in the heavens", Context: "Cosmic scope"},
		{Arabic: "في الأرض", Transliteration: "fi'l-ard", English: "in the earth", Context: "Earthly domain"},
		{Arabic: "في الآخرة", Transliteration: "fi'l-akhirah", English: "in the Hereafter", Context: "Eschatological reference"},
		{Arabic: "في قلوبهم", Transliteration: "fi qulubihim", English: "in their hearts", Context: "Internal spiritual state"},
		{Arabic: "في الدنيا", Transliteration: "fi'd-dunya", English: "in this world", Context: "Temporal worldly life"},
	},
	"على": {
		{Arabic: "على الله", Transliteration: "'ala Allah", English: "upon Allah / Allah's responsibility", Context: "Divine guarantee or trust"},
		{Arabic: "على العرش", Transliteration: "'ala'l-'arsh", English: "upon the Throne", Context: "Divine sovereignty"},
		{Arabic: "على المؤمنين", Transliteration: "'ala'l-mu'minin", English: "upon the believers", Context: "Obligation or blessing for believers"},
		{Arabic: "على كل شيء", Transliteration: "'ala kulli shay'", English: "over everything", Context: "Divine omnipotence"},
		{Arabic: "على الصراط", Transliteration: "'ala's-sirat", English: "upon the path", Context: "Guidance and direction"},
	},
	"إلى": {
		{Arabic: "إلى الله", Transliteration: "ila Allah", English: "to Allah", Context: "Return or direction to Allah"},
		{Arabic: "إلى ربك", Transliteration: "ila rabbik", English: "to your Lord", Context: "Personal relationship with Allah"},
		{Arabic: "إلى الصراط المستقيم", Transliteration: "ila's-sirat al-mustaqim", English: "to the straight path", Context: "Guidance and direction"},
		{Arabic: "إلى يوم الدين", Transliteration: "ila yawm ad-din", English: "until the Day of Judgment", Context: "Temporal endpoint"},
		{Arabic: "إلى الجنة", Transliteration: "ila'l-jannah", English: "to Paradise", Context: "Ultimate destination for believers"},
	},
	"ما": {
		{Arabic: "ما شاء الله", Transliteration: "ma sha' Allah", English: "what Allah wills", Context: "Divine will and decree"},
		{Arabic: "ما في السماوات", Transliteration: "ma fi's-samawat", English: "what is in the heavens", Context: "Cosmic contents"},
		{Arabic: "ما عند الله", Transliteration: "ma 'inda Allah", English: "what is with Allah", Context: "Divine treasures or rewards"},
		{Arabic: "ما كان لهم", Transliteration: "ma kana lahum", English: "it was not for them", Context: "Negation of right or ability"},
		{Arabic: "ما أنزل الله", Transliteration: "ma anzala Allah", English: "what Allah revealed", Context: "Divine revelation"},
	},
	"لا": {
		{Arabic: "لا إله إلا الله", Transliteration: "la ilaha illa Allah", English: "There is no god but Allah", Context: "Declaration of monotheism"},
		{Arabic: "لا شريك له", Transliteration: "la sharika lah", English: "He has no partner", Context: "Divine uniqueness"},
		{Arabic: "لا خوف عليهم", Transliteration: "la khawfun 'alayhim", English: "no fear upon them", Context: "Divine reassurance"},
		{Arabic: "لا يظلم ربك", Transliteration: "la yazlimu rabbuk", English: "your Lord does not wrong", Context: "Divine justice"},
		{Arabic: "لا ريب فيه", Transliteration: "la rayba fih", English: "no doubt in it", Context: "Certainty about the Quran"},
	},
	"الذين": {
		{Arabic: "الذين آمنوا", Transliteration: "alladhina amanu", English: "those who believe", Context: "Believers are often referenced this way"},
		{Arabic: "الذين كفروا", Transliteration: "alladhina kafaru", English: "those who disbelieve", Context: "Disbelievers are often referenced this way"},
		{Arabic: "الذين عملوا الصالحات", Transliteration: "alladhina 'amilu's-salihat", English: "those who do righteous deeds", Context: "Description of the righteous"},
		{Arabic: "الذين من قبلهم", Transliteration: "alladhina min qablihim", English: "those who came before them", Context: "Reference to previous generations"},
		{Arabic: "الذين أنعم الله عليهم", Transliteration: "alladhina an'ama Allah 'alayhim", English: "those upon whom Allah bestowed favor", Context: "Blessed by Allah"},
	},
	"كان": {
		{Arabic: "كان الله غفوراً رحيماً", Transliteration: "kana Allah ghafuran rahima", English: "Allah is Forgiving and Merciful", Context: "Common ending emphasizing Allah's attributes"},
		{Arabic: "كان على كل شيء قديراً", Transliteration: "kana 'ala kulli shay'in qadira", English: "He is able to do all things", Context: "Emphasis on Allah's omnipotence"},
		{Arabic: "كان بهم رحيماً", Transliteration: "kana bihim rahima", English: "He is merciful to them", Context: "Allah's mercy toward people"},
		{Arabic: "كان عليماً حكيماً", Transliteration: "kana 'aliman hakima", English: "He is Knowing and Wise", Context: "Allah's knowledge and wisdom"},
		{Arabic: "كان بما تعملون بصيراً", Transliteration: "kana bima ta'maluna basira", English: "He is Seeing of what you do", Context: "Allah's awareness of human actions"},
	},
	"و": {
		{Arabic: "والله أعلم", Transliteration: "wa'llahu a'lam", English: "and Allah knows best", Context: "Acknowledgment of Allah's superior knowledge"},
		{Arabic: "والآخرة خير", Transliteration: "wa'l-akhiratu khayr", English: "and the Hereafter is better", Context: "Comparison between this life and the next"},
		{Arabic: "والله غني", Transliteration: "wa'llahu ghaniyy", English: "and Allah is Self-Sufficient", Context: "Allah's independence from creation"},
		{Arabic: "وهو العزيز الحكيم", Transliteration: "wa huwa'l-'aziz al-hakim", English: "and He is the Exalted in Might, the Wise", Context: "Common combination of Allah's attributes"},
		{Arabic: "والله بكل شيء عليم", Transliteration: "wa'llahu bi kulli shay'in 'alim", English: "and Allah is Knowing of all things", Context: "Allah's comprehensive knowledge"},
	},
	"ب": {
		{Arabic: "بسم الله", Transliteration: "bismi'llah", English: "in the name of Allah", Context: "Beginning of chapters and actions"},
		{Arabic: "بإذن الله", Transliteration: "bi'idhni'llah", English: "by Allah's permission", Context: "Things happen only with Allah's permission"},
		{Arabic: "برحمة من الله", Transliteration: "bi rahmatin mina'llah", English: "by mercy from Allah", Context: "Divine grace and compassion"},
		{Arabic: "بما كانوا يعملون", Transliteration: "bima kanu ya'malun", English: "for what they used to do", Context: "Divine recompense based on actions"},
		{Arabic: "بالحق", Transliteration: "bil-haqq", English: "with truth / in truth", Context: "Divine actions are always truthful"},
	},
	"لهم": {
		{Arabic: "لهم جنات", Transliteration: "lahum jannat", English: "for them are gardens", Context: "Promise of Paradise for believers", Category: "theological"},
		{Arabic: "لهم أجر عظيم", Transliteration: "lahum ajrun 'azim", English: "for them is a great reward", Context: "Divine reward for good deeds", Category: "theological"},
		{Arabic: "لهم ما يشاءون", Transliteration: "lahum ma yasha'un", English: "for them is whatever they wish", Context: "Abundance in Paradise", Category: "theological"},
		{Arabic: "لهم البشرى", Transliteration: "lahum al-bushra", English: "for them is good news", Context: "Glad tidings for the righteous", Category: "theological"},
		{Arabic: "لهم عذاب أليم", Transliteration: "lahum 'adhabun alim", English: "for them is a painful punishment", Context: "Warning for wrongdoers", Category: "theological"},
	},
	"إذا": {
		{Arabic: "إذا جاء نصر الله", Transliteration: "idha ja'a nasru Allah", English: "when the help of Allah comes", Context: "Conditional statement about divine help", Category: "conditional"},
		{Arabic: "إذا قرئ القرآن", Transliteration: "idha quri'a al-qur'an", English: "when the Quran is recited", Context: "Proper etiquette during recitation", Category: "conditional"},
		{Arabic: "إذا دعاك", Transliteration: "idha da'ak", English: "when He calls you", Context: "Response to divine call", Category: "conditional"},
	},
	"بل": {
		{Arabic: "بل الله", Transliteration: "bal Allah", English: "rather, Allah", Context: "Correction emphasizing Allah's role", Category: "grammatical"},
		{Arabic: "بل أنتم", Transliteration: "bal antum", English: "rather, you", Context: "Contradiction or emphasis", Category: "grammatical"},
		{Arabic: "بل هو الحق", Transliteration: "bal huwa al-haqq", English: "rather, it is the truth", Context: "Affirming the truth", Category: "grammatical"},
	},
	"حتى": {
		{Arabic: "حتى يأتيهم", Transliteration: "hatta ya'tiyahum", English: "until it comes to them", Context: "Temporal endpoint", Category: "temporal"},
		{Arabic: "حتى الموت", Transliteration: "hatta al-mawt", English: "until death", Context: "Ultimate temporal boundary", Category: "temporal"},
		{Arabic: "حتى تؤمنوا", Transliteration: "hatta tu'minu", English: "until you believe", Context: "Condition for change", Category: "conditional"},
	},
	"له": {
		{Arabic: "له ما في السماوات", Transliteration: "lahu ma fi's-samawat", English: "to Him belongs what is in the heavens", Context: "Allah's ownership of all creation"},
		{Arabic: "له الحمد", Transliteration: "lahu'l-hamd", English: "to Him is praise", Context: "All praise belongs to Allah"},
		{Arabic: "له الملك", Transliteration: "lahu'l-mulk", English: "to Him belongs sovereignty", Context: "Allah's absolute authority"},
		{Arabic: "له الأسماء الحسنى", Transliteration: "lahu'l-asma' al-husna", English: "to Him belong the most beautiful names", Context: "Allah's perfect attributes"},
		{Arabic: "له ما يشاء", Transliteration: "lahu ma yasha'", English: "to Him belongs whatever He wills", Context: "Allah's absolute will"},
	},
	"لها": {
		{Arabic: "لها ما كسبت", Transliteration: "laha ma kasabat", English: "for it is what it earned", Context: "Each soul gets what it deserves"},
		{Arabic: "لها عذاب", Transliteration: "laha 'adhab", English: "for it is punishment", Context: "Consequence for wrongdoing"},
		{Arabic: "لها أجر", Transliteration: "laha ajr", English: "for it is reward", Context: "Recompense for good deeds"},
		{Arabic: "لها ما تشاء", Transliteration: "laha ma tasha'", English: "for it is whatever it wishes", Context: "Fulfillment of desires"},
	},
	"بهم": {
		{Arabic: "والله بهم عليم", Transliteration: "wa'llahu bihim 'alim", English: "and Allah is Knowing of them", Context: "Allah's complete awareness"},
		{Arabic: "كان بهم رحيماً", Transliteration: "kana bihim rahima", English: "He is merciful to them", Context: "Allah's mercy toward people"},
		{Arabic: "فعل بهم", Transliteration: "fa'ala bihim", English: "He did to them", Context: "Divine action or intervention"},
		{Arabic: "ما بهم من نعمة", Transliteration: "ma bihim min ni'ma", English: "whatever blessing they have", Context: "Recognition of Allah's blessings"},
	},
	"عليهم": {
		{Arabic: "عليهم دائرة السوء", Transliteration: "'alayhim da'iratu's-su'", English: "upon them is the evil turn of fortune", Context: "Consequence for wrongdoing"},
		{Arabic: "أنعم الله عليهم", Transliteration: "an'ama'llahu 'alayhim", English: "Allah bestowed favor upon them", Context: "Divine blessing and guidance"},
		{Arabic: "لا خوف عليهم", Transliteration: "la khawfun 'alayhim", English: "no fear upon them", Context: "Divine reassurance for believers"},
		{Arabic: "السلام عليهم", Transliteration: "as-salamu 'alayhim", English: "peace be upon them", Context: "Greeting and blessing"},
		{Arabic: "غضب الله عليهم", Transliteration: "ghadiba'llahu 'alayhim", English: "Allah's wrath is upon them", Context: "Divine displeasure with wrongdoers"},
	},
}

// PhrasesFor returns the curated phrases for a function word, or nil when
// none are authored.
func PhrasesFor(arabic string) []models.Phrase {
	return functionWordPhrases[arabic]
}
