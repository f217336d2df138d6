package pinyin

// validSyllables is the closed inventory of standard Hanyu Pinyin syllables
// (tone-less, ASCII, "v" substituting for "ü" as go-pinyin itself does),
// used to greedily segment an already-romanized run of Latin letters back
// into the same per-syllable granularity the Han side of the dictionary
// index uses.
var validSyllables = buildSyllableSet(
	// Zero initial.
	"a", "o", "e", "ai", "ei", "ao", "ou", "an", "en", "ang", "eng", "er",
	"yi", "ya", "yo", "ye", "yao", "you", "yan", "yin", "yang", "ying", "yong",
	"wu", "wa", "wo", "wai", "wei", "wan", "wen", "wang", "weng",
	"yu", "yue", "yuan", "yun",

	// b
	"ba", "bo", "bai", "bei", "bao", "ban", "ben", "bang", "beng",
	"bi", "bie", "biao", "bian", "bin", "bing", "bu",
	// p
	"pa", "po", "pai", "pei", "pao", "pou", "pan", "pen", "pang", "peng",
	"pi", "pie", "piao", "pian", "pin", "ping", "pu",
	// m
	"ma", "mo", "me", "mai", "mei", "mao", "mou", "man", "men", "mang", "meng",
	"mi", "mie", "miao", "miu", "mian", "min", "ming", "mu",
	// f
	"fa", "fo", "fei", "fou", "fan", "fen", "fang", "feng", "fu",
	// d
	"da", "de", "dai", "dei", "dao", "dou", "dan", "den", "dang", "deng", "dong",
	"di", "dia", "die", "diao", "diu", "dian", "ding", "du", "duo", "dui", "duan", "dun",
	// t
	"ta", "te", "tai", "tao", "tou", "tan", "tang", "teng", "tong",
	"ti", "tie", "tiao", "tian", "ting", "tu", "tuo", "tui", "tuan", "tun",
	// n
	"na", "ne", "nai", "nei", "nao", "nou", "nan", "nen", "nang", "neng", "nong",
	"ni", "nia", "nie", "niao", "niu", "nian", "nin", "niang", "ning",
	"nu", "nuo", "nuan", "nun", "nv", "nve",
	// l
	"la", "le", "lai", "lei", "lao", "lou", "lan", "lang", "leng", "long",
	"li", "lia", "lie", "liao", "liu", "lian", "lin", "liang", "ling",
	"lu", "luo", "luan", "lun", "lv", "lve",
	// g
	"ga", "ge", "gai", "gei", "gao", "gou", "gan", "gen", "gang", "geng", "gong",
	"gu", "gua", "guo", "guai", "gui", "guan", "gun", "guang",
	// k
	"ka", "ke", "kai", "kei", "kao", "kou", "kan", "ken", "kang", "keng", "kong",
	"ku", "kua", "kuo", "kuai", "kui", "kuan", "kun", "kuang",
	// h
	"ha", "he", "hai", "hei", "hao", "hou", "han", "hen", "hang", "heng", "hong",
	"hu", "hua", "huo", "huai", "hui", "huan", "hun", "huang",
	// j
	"ji", "jia", "jie", "jiao", "jiu", "jian", "jin", "jiang", "jing", "jiong",
	"ju", "jue", "juan", "jun",
	// q
	"qi", "qia", "qie", "qiao", "qiu", "qian", "qin", "qiang", "qing", "qiong",
	"qu", "que", "quan", "qun",
	// x
	"xi", "xia", "xie", "xiao", "xiu", "xian", "xin", "xiang", "xing", "xiong",
	"xu", "xue", "xuan", "xun",
	// zh
	"zha", "zhe", "zhi", "zhai", "zhei", "zhao", "zhou", "zhan", "zhen", "zhang",
	"zheng", "zhong", "zhu", "zhua", "zhuo", "zhuai", "zhui", "zhuan", "zhun", "zhuang",
	// ch
	"cha", "che", "chi", "chai", "chao", "chou", "chan", "chen", "chang",
	"cheng", "chong", "chu", "chua", "chuo", "chuai", "chui", "chuan", "chun", "chuang",
	// sh
	"sha", "she", "shi", "shai", "shei", "shao", "shou", "shan", "shen", "shang",
	"sheng", "shu", "shua", "shuo", "shuai", "shui", "shuan", "shun", "shuang",
	// r
	"re", "ri", "rao", "rou", "ran", "ren", "rang", "reng", "rong",
	"ru", "rua", "ruo", "rui", "ruan", "run",
	// z
	"za", "ze", "zi", "zai", "zei", "zao", "zou", "zan", "zen", "zang", "zeng", "zong",
	"zu", "zuo", "zui", "zuan", "zun",
	// c
	"ca", "ce", "ci", "cai", "cao", "cou", "can", "cen", "cang", "ceng", "cong",
	"cu", "cuo", "cui", "cuan", "cun",
	// s
	"sa", "se", "si", "sai", "sao", "sou", "san", "sen", "sang", "seng", "song",
	"su", "suo", "sui", "suan", "sun",
)

// maxSyllableLen is the length of the longest entries in validSyllables
// (e.g. "zhuang", "shuang", "chuang"), the starting window for the greedy
// longest-match scan.
const maxSyllableLen = 6

func buildSyllableSet(syllables ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(syllables))
	for _, s := range syllables {
		set[s] = struct{}{}
	}
	return set
}

// segmentSyllables greedily splits run (assumed already lowercase) into
// known pinyin syllables, longest match first at each position. It returns
// nil if any position cannot be matched at all, signaling the caller to
// fall back to treating the whole run as one opaque token.
func segmentSyllables(run string) []string {
	var syllables []string
	i := 0
	for i < len(run) {
		window := maxSyllableLen
		if remaining := len(run) - i; remaining < window {
			window = remaining
		}

		matched := ""
		for l := window; l >= 1; l-- {
			candidate := run[i : i+l]
			if _, ok := validSyllables[candidate]; ok {
				matched = candidate
				break
			}
		}
		if matched == "" {
			return nil
		}
		syllables = append(syllables, matched)
		i += len(matched)
	}
	return syllables
}
