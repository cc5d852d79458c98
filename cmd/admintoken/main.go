// admintoken prints a signed admin token for the cache management
// endpoints. Pass it as the admin_token cookie.
package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/akarpov/salesdash/internal/pkg/constants"
	"github.com/akarpov/salesdash/internal/pkg/logger"
	"github.com/akarpov/salesdash/internal/pkg/utils"
)

func main() {
	ctx := context.Background()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./configs")
	viper.SetEnvPrefix("salesdash")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logger.Warnf(ctx, "no config file found: %s", err.Error())
	}

	secret := viper.GetString(constants.ViperKeySecret)
	if secret == "" {
		logger.Fatal(ctx, fmt.Errorf("auth secret is not configured"))
	}

	token, err := utils.GenerateAuthToken(&utils.AuthTokenWrapper{Secret: secret})
	if err != nil {
		logger.Fatal(ctx, err)
	}

	fmt.Println(token)
}
