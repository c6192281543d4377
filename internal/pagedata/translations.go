// Package pagedata carries the site's page translations as a compiled-in
// structure. The localization core receives it as an already-loaded store;
// nothing is read from disk at runtime.
package pagedata

import "sitekit/internal/domain/entities"

var store = entities.Store{
	"en": {
		"nav.home":            "Home",
		"nav.feedback":        "Feedback",
		"hero.title":          "We build small tools that travel well",
		"hero.subtitle":       "Utilities for the web, translated into your language.",
		"form.email":          "Your email (optional)",
		"form.message":        "Tell us what broke or what you liked",
		"form.type":           "bug report",
		"form.submit":         "Send feedback",
		"footer.contact":      "Questions? Write to us",
		"footer.contact.link": "on the feedback page",
	},
	"ru": {
		"nav.home":            "Главная",
		"nav.feedback":        "Обратная связь",
		"hero.title":          "Мы делаем небольшие инструменты, которые хорошо переносятся",
		"hero.subtitle":       "Утилиты для веба, переведённые на ваш язык.",
		"form.email":          "Ваш email (необязательно)",
		"form.message":        "Расскажите, что сломалось или что понравилось",
		"form.type":           "сообщение об ошибке",
		"form.submit":         "Отправить отзыв",
		"footer.contact":      "Вопросы? Напишите нам",
		"footer.contact.link": "на странице обратной связи",
	},
}

// Store returns the active page translation set.
func Store() entities.Store { return store }
