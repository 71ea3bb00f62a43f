package handlers

// @title Outreach API
// @version 1.0
// @description Address-to-district geocoding proxy and engagement tracking for the SB 36 outreach site

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8888
// @BasePath /api

// @tag.name geocode
// @tag.description Census geocoder proxy

// @tag.name engagement
// @tag.description Engagement event recording
