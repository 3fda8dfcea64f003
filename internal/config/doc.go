// SideQuest - Social Quest Matchmaking and Engagement Analytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sidequest-dev/sidequest

/*
Package config provides layered configuration loading using Koanf v2.

Configuration is assembled from three sources with clear precedence:

 1. Built-in defaults (lowest priority)
 2. Optional YAML config file
 3. Environment variables (highest priority)

# Config File

The loader searches config.yaml, config.yml, /etc/sidequest/config.yaml and
/etc/sidequest/config.yml in order; CONFIG_PATH overrides the search. Example:

	server:
	  host: 0.0.0.0
	  port: 8080
	  timeout: 30s
	api:
	  rate_limit_reqs: 100
	  rate_limit_window: 1m
	  cors_origins:
	    - https://app.example.edu
	security:
	  auth_mode: jwt
	  jwt_secret: change-me-to-32-plus-characters!!
	  session_timeout: 24h
	logging:
	  level: info
	  format: json
	recommend:
	  lookahead: 72h

# Environment Variables

	HTTP_HOST, HTTP_PORT, HTTP_TIMEOUT, ENVIRONMENT
	RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT, CORS_ORIGINS
	AUTH_MODE, JWT_SECRET, SESSION_TIMEOUT
	LOG_LEVEL, LOG_FORMAT, LOG_CALLER
	RECOMMEND_LOOKAHEAD

CORS_ORIGINS accepts a comma-separated list. Unrecognized environment
variables are ignored.

# Validation

Load validates the assembled config before returning it: port range, positive
timeouts, a known auth mode (none or jwt), a 32+ character JWT secret when jwt
mode is active, and valid zerolog level and format names.
*/
package config
