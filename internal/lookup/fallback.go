package lookup

import "github.com/tijeane/quran-learning/internal/models"

// fallbackVerses is the curated verse table for high-frequency words.
// Hits here return immediately with no network call, so the most common
// vocabulary stays fast and works offline. The function-word entries
// (الذين, من, إن, ما) are never reached by the primary verse path, which
// routes those tokens to the phrase table; they stay in the table because
// the similarity rescue matches inflected content words against them.
var fallbackVerses = map[string]models.VerseResult{
	"الله": {
		Arabic:     "بِسْمِ اللَّهِ الرَّحْمَٰنِ الرَّحِيمِ",
		English:    "In the name of Allah, the Entirely Merciful, the Especially Merciful.",
		Reference:  "Surah Al-Fatiha 1:1",
		SurahName:  "Al-Fatiha",
		AyahNumber: 1,
		AudioURL:   "https://cdn.islamic.network/quran/audio/128/ar.alafasy/1.mp3",
	},
	"الرحمن": {
		Arabic:     "الرَّحْمَٰنُ عَلَى الْعَرْشِ اسْتَوَىٰ",
		English:    "The Most Merciful [who is] above the Throne established.",
		Reference:  "Surah Ta-Ha 20:5",
		SurahName:  "Ta-Ha",
		AyahNumber: 5,
		AudioURL:   "https://cdn.islamic.network/quran/audio/128/ar.alafasy/1005.mp3",
	},
	"الرحيم": {
		Arabic:     "وَهُوَ الْغَفُورُ الرَّحِيمُ",
		English:    "And He is the Forgiving, the Merciful.",
		Reference:  "Surah Al-Mulk 67:2",
		SurahName:  "Al-Mulk",
		AyahNumber: 2,
		AudioURL:   "https://cdn.islamic.network/quran/audio/128/ar.alafasy/5255.mp3",
	},
	"ملك": {
		Arabic:     "مَالِكِ يَوْمِ الدِّينِ",
		English:    "Sovereign of the Day of Recompense.",
		Reference:  "Surah Al-Fatiha 1:4",
		SurahName:  "Al-Fatiha",
		AyahNumber: 4,
		AudioURL:   "https://cdn.islamic.network/quran/audio/128/ar.alafasy/4.mp3",
	},
	"يوم": {
		Arabic:     "مَالِكِ يَوْمِ الدِّينِ",
		English:    "Sovereign of the Day of Recompense.",
		Reference:  "Surah Al-Fatiha 1:4",
		SurahName:  "Al-Fatiha",
		AyahNumber: 4,
		AudioURL:   "https://cdn.islamic.network/quran/audio/128/ar.alafasy/4.mp3",
	},
	"الدين": {
		Arabic:     "مَالِكِ يَوْمِ الدِّينِ",
		English:    "Sovereign of the Day of Recompense.",
		Reference:  "Surah Al-Fatiha 1:4",
		SurahName:  "Al-Fatiha",
		AyahNumber: 4,
		AudioURL:   "https://cdn.islamic.network/quran/audio/128/ar.alafasy/4.mp3",
	},
	"الذين": {
		Arabic:     "الَّذِينَ آمَنُوا وَعَمِلُوا الصَّالِحَاتِ لَهُمْ جَنَّاتٌ تَجْرِي مِن تَحْتِهَا الْأَنْهَارُ",
		English:    "Those who believe and do righteous deeds - for them are gardens beneath which rivers flow.",
		Reference:  "Surah Al-Baqarah 2:25",
		SurahName:  "Al-Baqarah",
		AyahNumber: 25,
		AudioURL:   "https://cdn.islamic.network/quran/audio/128/ar.alafasy/25.mp3",
	},
	"من": {
		Arabic:     "مَن يَعْمَلْ سُوءًا يُجْزَ بِهِ وَلَا يَجِدْ لَهُ مِن دُونِ اللَّهِ وَلِيًّا وَلَا نَصِيرًا",
		English:    "Whoever does a wrong will be recompensed for it, and he will not find besides Allah a protector or a helper.",
		Reference:  "Surah An-Nisa 4:123",
		SurahName:  "An-Nisa",
		AyahNumber: 123,
		AudioURL:   "https://cdn.islamic.network/quran/audio/128/ar.alafasy/623.mp3",
	},
	"إن": {
		Arabic:     "إِنَّ اللَّهَ لَا يُغَيِّرُ مَا بِقَوْمٍ حَتَّىٰ يُغَيِّرُوا مَا بِأَنفُسِهِمْ",
		English:    "Indeed, Allah will not change the condition of a people until they change what is in themselves.",
		Reference:  "Surah Ar-Ra'd 13:11",
		SurahName:  "Ar-Ra'd",
		AyahNumber: 11,
		AudioURL:   "https://cdn.islamic.network/quran/audio/128/ar.alafasy/1635.mp3",
	},
	"ما": {
		Arabic:     "وَمَا خَلَقْتُ الْجِنَّ وَالْإِنسَ إِلَّا لِيَعْبُدُونِ",
		English:    "And I did not create the jinn and mankind except to worship Me.",
		Reference:  "Surah Adh-Dhariyat 51:56",
		SurahName:  "Adh-Dhariyat",
		AyahNumber: 56,
		AudioURL:   "https://cdn.islamic.network/quran/audio/128/ar.alafasy/5185.mp3",
	},
}
