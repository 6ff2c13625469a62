package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/playtube-app/playtube/internal/handler/http/middleware"
	"github.com/playtube-app/playtube/internal/usecase"
	usecasecontract "github.com/playtube-app/playtube/internal/usecase/contract"
)

type Router struct {
	userHandler         *UserHandler
	videoHandler        *VideoHandler
	commentHandler      *CommentHandler
	tweetHandler        *TweetHandler
	playlistHandler     *PlaylistHandler
	engagementHandler   *EngagementHandler
	subscriptionHandler *SubscriptionHandler
	userUsecase         usecasecontract.IUserUseCase
	jwtService          usecase.JWTService
}

func NewRouter(
	userUsecase usecasecontract.IUserUseCase,
	videoUsecase usecasecontract.IVideoUseCase,
	commentUsecase usecasecontract.ICommentUseCase,
	tweetUsecase usecasecontract.ITweetUseCase,
	playlistUsecase usecasecontract.IPlaylistUseCase,
	engagementUsecase usecasecontract.IEngagementUseCase,
	engagementQueries usecasecontract.IEngagementQueryUseCase,
	subscriptionUsecase usecasecontract.ISubscriptionUseCase,
	jwtService usecase.JWTService,
) *Router {
	return &Router{
		userHandler:         NewUserHandler(userUsecase),
		videoHandler:        NewVideoHandler(videoUsecase),
		commentHandler:      NewCommentHandler(commentUsecase),
		tweetHandler:        NewTweetHandler(tweetUsecase),
		playlistHandler:     NewPlaylistHandler(playlistUsecase),
		engagementHandler:   NewEngagementHandler(engagementUsecase, engagementQueries),
		subscriptionHandler: NewSubscriptionHandler(subscriptionUsecase),
		userUsecase:         userUsecase,
		jwtService:          jwtService,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))
	router.Use(middleware.Metrics())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")

	// Public routes (no authentication required)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.userHandler.Register)
		auth.POST("/login", r.userHandler.Login)
		auth.POST("/refresh-token", r.userHandler.RefreshToken)
		auth.POST("/logout", r.userHandler.Logout)
	}

	// Public, requester-aware routes
	public := v1.Group("/")
	public.Use(middleware.OptionalAuth(r.jwtService))
	{
		public.GET("/users/:id", r.userHandler.GetProfile)
		public.GET("/videos", r.videoHandler.List)
		public.GET("/videos/:id", r.videoHandler.Get)
		public.GET("/videos/:id/comments", r.commentHandler.ListByVideo)
		public.GET("/users/:id/tweets", r.tweetHandler.ListByOwner)
		public.GET("/users/:id/playlists", r.playlistHandler.ListByOwner)
		public.GET("/playlists/:id", r.playlistHandler.Get)

		public.GET("/engagement/video/:id/likes", r.engagementHandler.VideoLikeCount)
		public.GET("/engagement/video/:id/dislikes", r.engagementHandler.VideoDislikeCount)
		public.GET("/engagement/video/:id/likers", r.engagementHandler.VideoLikers)
		public.GET("/engagement/comment/:id/likes", r.engagementHandler.CommentLikeCount)
		public.GET("/engagement/tweet/:id/likes", r.engagementHandler.TweetLikeCount)

		public.GET("/subscriptions/:id/subscribers", r.subscriptionHandler.Subscribers)
		public.GET("/subscriptions/:id/channels", r.subscriptionHandler.SubscribedChannels)
		public.GET("/subscriptions/:id/count", r.subscriptionHandler.SubscriberCount)
	}

	// Protected routes (authentication required)
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleWare(r.jwtService, r.userUsecase))
	{
		protected.GET("/me", r.userHandler.GetCurrentUser)

		// Toggle routes
		protected.POST("/toggle/video/:id", r.engagementHandler.ToggleVideoLike)
		protected.POST("/toggle/video/:id/dislike", r.engagementHandler.ToggleVideoDislike)
		protected.POST("/toggle/comment/:id", r.engagementHandler.ToggleCommentLike)
		protected.POST("/toggle/tweet/:id", r.engagementHandler.ToggleTweetLike)
		protected.POST("/toggle/subscription/:id", r.subscriptionHandler.ToggleSubscription)

		// Engagement read side
		protected.GET("/engagement/liked-videos", r.engagementHandler.LikedVideos)
		protected.GET("/engagement/disliked-videos", r.engagementHandler.DislikedVideos)

		// Video routes
		protected.POST("/videos", r.videoHandler.Publish)
		protected.PATCH("/videos/:id", r.videoHandler.Update)
		protected.DELETE("/videos/:id", r.videoHandler.Delete)
		protected.PATCH("/videos/:id/publish-status", r.videoHandler.TogglePublishStatus)

		// Comment routes
		protected.POST("/videos/:id/comments", r.commentHandler.Add)
		protected.PATCH("/comments/:id", r.commentHandler.Update)
		protected.DELETE("/comments/:id", r.commentHandler.Delete)

		// Tweet routes
		protected.POST("/tweets", r.tweetHandler.Create)
		protected.PATCH("/tweets/:id", r.tweetHandler.Update)
		protected.DELETE("/tweets/:id", r.tweetHandler.Delete)

		// Playlist routes
		protected.POST("/playlists", r.playlistHandler.Create)
		protected.PATCH("/playlists/:id", r.playlistHandler.Update)
		protected.DELETE("/playlists/:id", r.playlistHandler.Delete)
		protected.PATCH("/playlists/:id/videos/:videoId", r.playlistHandler.AddVideo)
		protected.DELETE("/playlists/:id/videos/:videoId", r.playlistHandler.RemoveVideo)
	}
}
