// @title         recruit-service API
// @version       1.0
// @description   Бэк-офис рекрутинга: вакансии, кандидаты из загрузки резюме и чат-бота, поведенческие анкеты DISC с описанием от LLM.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Токен авторизации. Поддерживаются форматы: "Bearer <JWT>" или "<JWT>".
package main

import (
	"os"

	_ "github.com/artem13815/recruit/docs"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
