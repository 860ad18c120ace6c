package initialization

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/dpak1999/cognitionis-server/pkg/cache"
	"github.com/dpak1999/cognitionis-server/pkg/database"
	"github.com/dpak1999/cognitionis-server/pkg/encryption"
	"github.com/dpak1999/cognitionis-server/pkg/mail"
	"github.com/dpak1999/cognitionis-server/pkg/payments"
	store "github.com/dpak1999/cognitionis-server/pkg/s3"
	"github.com/dpak1999/cognitionis-server/pkg/utils"
)

// Init all need when server start
func Init() {
	utils.InitLogger()
	utils.InitVariables()
	encryption.InitSnowflake()
	database.InitMongoDB()
	if err := database.SetupUniqueIndexes(); err != nil {
		utils.Logger.Sugar().Fatalf("Failed to setup unique indexes: %v", err)
	}
	cache.InitRedis()
	store.ConnectS3()
	mail.ConnectSES()
	payments.InitStripe()
	utils.InitValidator()
	fmt.Println(lipgloss.NewStyle().Foreground(lipgloss.Color("#18FD7BFF")).Render("Successfully initialized all necessary services"))
}
