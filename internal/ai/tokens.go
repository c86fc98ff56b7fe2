package ai

import (
	"github.com/pkoukk/tiktoken-go"
)

const fallbackEncoding = "cl100k_base"

// estimateTokens оценивает число токенов в текстах. Для неизвестных моделей
// используется cl100k_base. Возвращает 0, если токенайзер недоступен.
func estimateTokens(model string, texts ...string) int {
	tke, err := tiktoken.EncodingForModel(model)
	if err != nil {
		tke, err = tiktoken.GetEncoding(fallbackEncoding)
		if err != nil {
			return 0
		}
	}
	total := 0
	for _, text := range texts {
		total += len(tke.Encode(text, nil, nil))
	}
	return total
}
