package controller

import (
	"github.com/DrRobsonAmuiJr/ROE/internal/service/entries"
	"github.com/DrRobsonAmuiJr/ROE/internal/service/partners"
	"github.com/DrRobsonAmuiJr/ROE/internal/service/reports"
)

type Controller struct {
	reports  *reports.Service
	entries  *entries.Service
	partners *partners.Service
}

func NewController(reports *reports.Service, entries *entries.Service, partners *partners.Service) *Controller {
	return &Controller{
		reports:  reports,
		entries:  entries,
		partners: partners,
	}
}
