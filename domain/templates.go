package domain

import "math/rand/v2"

// Templates pairs every talking-head video template with the narrator voice
// recorded for it.
var Templates = []Template{
	{TemplateID: "f293f92b29b94735aa6860a016cffcd0", VoiceID: "vYENaCJHl4vFKNDYPr8y"},
	{TemplateID: "94065d8bfc56432c93675835342faa48", VoiceID: "0ZOhGcBopt9S6GBK8tnj"},
	{TemplateID: "dfe690b6a371416e998b742ab2574779", VoiceID: "Oq0cIHWGcnbOGozOQv0t"},
	{TemplateID: "79f5ab6ee28b429da09c679ae06952ab", VoiceID: "xMagNCpMgZ83QOEsHNre"},
	{TemplateID: "9890ae5d5a4042b1a73cf78df6f07870", VoiceID: "6BZyx2XekeeXOkTVn8un"},
	{TemplateID: "547c0e58249a452989f1849645fafc51", VoiceID: "EaBs7G1VibMrNAuz2Na7"},
	{TemplateID: "ab51f3a086ba4329a4c2eb58c9eb1335", VoiceID: "IY8nsD2RIP5N4FFQLaT3"},
}

type TemplatePicker interface {
	Pick() Template
}

type randomTemplatePicker struct {
	intN func(n int) int
}

// NewRandomTemplatePicker picks uniformly from Templates. A nil intN uses the
// global math/rand/v2 source.
func NewRandomTemplatePicker(intN func(n int) int) TemplatePicker {
	if intN == nil {
		intN = rand.IntN
	}
	return &randomTemplatePicker{intN: intN}
}

func (p *randomTemplatePicker) Pick() Template {
	return Templates[p.intN(len(Templates))]
}
