package pinyin

import "github.com/mozillazg/go-pinyin"

// scheme names kept internal rather than exposed on Normalizer's public
// surface: only ignore_tones is part of the matcher's external contract.
var namedSchemes = map[string]int{
	"normal":      pinyin.Normal,
	"tone":        pinyin.Tone,
	"tone2":       pinyin.Tone2,
	"tone3":       pinyin.Tone3,
	"initials":    pinyin.Initials,
	"firstletter": pinyin.FirstLetter,
	"finals":      pinyin.Finals,
	"finalstone":  pinyin.FinalsTone,
	"finalstone2": pinyin.FinalsTone2,
	"finalstone3": pinyin.FinalsTone3,
}
