package main

import (
	"fmt"
	"net/http"

	"github.com/scon-hq/scon-backend-go/internal/config"
	"github.com/scon-hq/scon-backend-go/internal/domain/payroll"
	appHTTP "github.com/scon-hq/scon-backend-go/internal/handler/http"
	"github.com/scon-hq/scon-backend-go/internal/pkg/database"
	"github.com/scon-hq/scon-backend-go/internal/pkg/jwt"
	"github.com/scon-hq/scon-backend-go/internal/repository/postgresql"
	authService "github.com/scon-hq/scon-backend-go/internal/service/auth"
	employeeService "github.com/scon-hq/scon-backend-go/internal/service/employee"
	payrollService "github.com/scon-hq/scon-backend-go/internal/service/payroll"
	scheduleService "github.com/scon-hq/scon-backend-go/internal/service/schedule"
	storeService "github.com/scon-hq/scon-backend-go/internal/service/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}
	if err := cfg.Validate(); err != nil {
		fmt.Println("Invalid config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	ownerRepo := postgresql.NewOwnerRepository(db)
	storeRepo := postgresql.NewStoreRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	payrollPolicy := payroll.Policy{
		MinHoursForAllowance: cfg.Payroll.MinHoursForAllowance,
		AllowanceDayHours:    cfg.Payroll.AllowanceDayHours,
		StandardWeekHours:    cfg.Payroll.StandardWeekHours,
		StandardDayHours:     cfg.Payroll.StandardDayHours,
		OvertimeMultiplier:   cfg.Payroll.OvertimeMultiplier,
		NightMultiplier:      cfg.Payroll.NightMultiplier,
		HolidayMultiplier:    cfg.Payroll.HolidayMultiplier,
		NightStart:           cfg.Payroll.NightStart,
		NightEnd:             cfg.Payroll.NightEnd,
	}

	authSvc := authService.NewAuthService(ownerRepo, jwtSvc)
	storeSvc := storeService.NewStoreService(storeRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, storeRepo)
	scheduleSvc := scheduleService.NewScheduleService(db, scheduleRepo, employeeRepo, storeRepo)
	payrollSvc := payrollService.NewPayrollService(scheduleRepo, employeeRepo, storeRepo, payrollPolicy)

	authHandler := appHTTP.NewAuthHandler(jwtSvc, authSvc)
	storeHandler := appHTTP.NewStoreHandler(storeSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		jwtSvc,
		cfg.App.AllowedOrigins,
		authHandler,
		storeHandler,
		employeeHandler,
		scheduleHandler,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
