package domain

import "errors"

type localized map[Language]string

func (l localized) in(lang Language) string {
	if s, ok := l[lang]; ok {
		return s
	}
	return l[LangZH]
}

var (
	msgRateLimited = localized{
		LangZH: "請求過於頻繁，請稍後再試。",
		LangEN: "Too many requests, please try again later.",
	}
	msgQuotaExceeded = localized{
		LangZH: "AI 解讀服務需要充值，請聯繫管理員。",
		LangEN: "The interpretation service is unavailable for billing reasons. Please contact the administrator.",
	}
	msgBackendUnavailable = localized{
		LangZH: "AI 解讀服務暫時不可用",
		LangEN: "The interpretation service is temporarily unavailable.",
	}
	msgEmptyGeneration = localized{
		LangZH: "AI 未返回有效的解讀結果",
		LangEN: "The interpretation service returned no result.",
	}
	msgInvalidDate = localized{
		LangZH: "日期轉換失敗，請檢查輸入的陽曆日期。",
		LangEN: "Could not convert the date, please check the solar date you entered.",
	}
	msgInvalidHour = localized{
		LangZH: "請選擇有效的時辰。",
		LangEN: "Please choose a valid hour.",
	}
	msgEmptyQuestion = localized{
		LangZH: "請輸入您想詢問的問題。",
		LangEN: "Please enter your question.",
	}
	msgQuestionTooLong = localized{
		LangZH: "問題過長，請精簡後再試。",
		LangEN: "Your question is too long, please shorten it.",
	}
	msgUnknownPosition = localized{
		LangZH: "無法識別的卦象。",
		LangEN: "Unrecognized divination result.",
	}
	msgInternal = localized{
		LangZH: "生成解讀時發生錯誤，請稍後再試。",
		LangEN: "Something went wrong while generating the interpretation, please try again later.",
	}
	msgFallbackInterpretation = localized{
		LangZH: "暫時無法生成 AI 解讀，請稍後再試。您可以參考卦象的基本說明進行理解。",
		LangEN: "The interpretation is temporarily unavailable. Please refer to the base description of the result.",
	}
)

// UserMessage returns a display message for err in lang.
func UserMessage(err error, lang Language) string {
	switch {
	case errors.Is(err, ErrRateLimited):
		return msgRateLimited.in(lang)
	case errors.Is(err, ErrQuotaExceeded):
		return msgQuotaExceeded.in(lang)
	case errors.Is(err, ErrEmptyGeneration):
		return msgEmptyGeneration.in(lang)
	case errors.Is(err, ErrBackendUnavailable):
		return msgBackendUnavailable.in(lang)
	case errors.Is(err, ErrInvalidDate):
		return msgInvalidDate.in(lang)
	case errors.Is(err, ErrInvalidHour):
		return msgInvalidHour.in(lang)
	case errors.Is(err, ErrEmptyQuestion):
		return msgEmptyQuestion.in(lang)
	case errors.Is(err, ErrQuestionTooLong):
		return msgQuestionTooLong.in(lang)
	case errors.Is(err, ErrUnknownPosition):
		return msgUnknownPosition.in(lang)
	default:
		return msgInternal.in(lang)
	}
}

// FallbackInterpretation is rendered in place of a generated interpretation
// whenever generation fails.
func FallbackInterpretation(lang Language) string {
	return msgFallbackInterpretation.in(lang)
}
