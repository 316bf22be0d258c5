package catalog

// The fixed 101-entry reference catalog. Entries are grouped by difficulty:
// ids 1-34 Easy, 35-67 Medium, 68-101 Hard. This table is read-only after
// process start; never mutate it.
var fixes = []Fix{
	// Easy entries
	{ID: 1, Difficulty: DifficultyEasy, Channel: ChannelLandingPage, Problem: "Hero headline lacks a clear promise", Solution: "Rewrite the H1 to state a single, specific benefit and outcome. Keep it under ~12 words and pair it with 1 action-focused CTA.", Example: "Change 'Quality skincare' to 'Clearer skin in 14 days. Start your plan.'"},
	{ID: 2, Difficulty: DifficultyEasy, Channel: ChannelLandingPage, Problem: "No primary CTA above the fold", Solution: "Place one high-contrast button near the H1 and make it sticky on mobile. Remove competing CTAs in the hero.", Example: "Add 'Shop Best Sellers' button next to the headline and hide secondary links on mobile."},
	{ID: 3, Difficulty: DifficultyEasy, Channel: ChannelLandingPage, Problem: "Crowded hero with sliders and multiple messages", Solution: "Remove carousels and keep a single static hero. Use one image that shows the product outcome.", Example: "Replace a 3-slide carousel with one lifestyle shot that matches the ad promise."},
	{ID: 4, Difficulty: DifficultyEasy, Channel: ChannelLandingPage, Problem: "Complex navigation confuses visitors", Solution: "Simplify your main menu to 5-7 categories maximum. Use clear, descriptive labels and organize products logically by customer intent.", Example: "Change 'Apparel & Accessories' to 'Men's Clothing' and 'Women's Clothing'"},
	{ID: 5, Difficulty: DifficultyEasy, Channel: ChannelLandingPage, Problem: "Missing or weak call-to-action buttons", Solution: "Use action-oriented text like 'Get Yours Now' or 'Start Saving Today' instead of generic 'Submit'. Make buttons stand out with contrasting colors.", Example: "Change 'Learn More' to 'Get 50% Off Today' with bright orange button"},
	{ID: 6, Difficulty: DifficultyEasy, Channel: ChannelLandingPage, Problem: "No clear value proposition on homepage", Solution: "Add a compelling headline that clearly states what you sell and the main benefit. Place it above the fold where visitors see it immediately.", Example: "'Get Professional Photos in 24 Hours - No Studio Required'"},
	{ID: 7, Difficulty: DifficultyEasy, Channel: ChannelLandingPage, Problem: "Missing contact information reduces trust", Solution: "Display phone number, email, and physical address in header or footer. Add 'Contact Us' page with multiple ways to reach you.", Example: "Add '📞 1-800-HELP-NOW' in top navigation bar"},
	{ID: 8, Difficulty: DifficultyEasy, Channel: ChannelLandingPage, Problem: "Poor mobile experience", Solution: "Ensure all buttons are thumb-friendly (44px minimum), text is readable without zooming, and forms work smoothly on mobile devices.", Example: "Increase 'Buy Now' button size from 32px to 48px height on mobile"},
	{ID: 9, Difficulty: DifficultyEasy, Channel: ChannelLandingPage, Problem: "No urgency or scarcity messaging", Solution: "Add time-limited offers, stock counters, or deadline messaging to create urgency without being pushy.", Example: "'Only 3 left in stock' or '48-hour flash sale ends soon'"},
	{ID: 10, Difficulty: DifficultyEasy, Channel: ChannelLandingPage, Problem: "Unclear return policy", Solution: "Prominently display your return policy and guarantee. Make it easy to find and understand to reduce purchase anxiety.", Example: "'30-day money-back guarantee - no questions asked'"},
	{ID: 11, Difficulty: DifficultyEasy, Channel: ChannelPaidAds, Problem: "Ad copy doesn't match landing page", Solution: "Ensure your ad headline and key messaging appear on the landing page. Maintain consistent tone, offers, and visual elements.", Example: "If ad says '50% off winter coats', landing page headline should mention the same offer"},
	{ID: 12, Difficulty: DifficultyEasy, Channel: ChannelPaidAds, Problem: "Generic ad headlines don't stand out", Solution: "Use specific numbers, benefits, and emotional triggers. Test different angles like savings, convenience, or status.", Example: "Change 'Great Shoes' to 'Comfortable Shoes That Don't Hurt After 12 Hours'"},
	{ID: 13, Difficulty: DifficultyEasy, Channel: ChannelPaidAds, Problem: "No clear call-to-action in ads", Solution: "Include specific action words and create urgency. Tell people exactly what to do next.", Example: "'Shop Now - Free Shipping Ends Tonight' instead of 'Learn More'"},
	{ID: 14, Difficulty: DifficultyEasy, Channel: ChannelPaidAds, Problem: "Not using ad extensions", Solution: "Add sitelink extensions, callout extensions, and structured snippets to take up more space and provide more information.", Example: "Add sitelinks for 'Free Shipping', 'Size Guide', 'Reviews' below main ad"},
	{ID: 15, Difficulty: DifficultyEasy, Channel: ChannelPaidAds, Problem: "Poor quality images in visual ads", Solution: "Use high-resolution, well-lit product photos with clean backgrounds. Show products in use when possible.", Example: "Replace white background product shot with lifestyle image of person wearing the item"},
	{ID: 16, Difficulty: DifficultyEasy, Channel: ChannelEmail, Problem: "Generic subject lines get ignored", Solution: "Personalize subject lines with names, locations, or past purchases. Create curiosity and urgency.", Example: "'Sarah, your cart is about to expire' instead of 'Complete your purchase'"},
	{ID: 17, Difficulty: DifficultyEasy, Channel: ChannelEmail, Problem: "No welcome email series", Solution: "Set up automated welcome emails introducing your brand, sharing your story, and providing value immediately after signup.", Example: "Send 3-email series: Welcome + discount, Brand story, Best sellers"},
	{ID: 18, Difficulty: DifficultyEasy, Channel: ChannelEmail, Problem: "Emails not mobile-optimized", Solution: "Use single-column layouts, large buttons (44px+), and readable font sizes (16px+) for mobile devices.", Example: "Stack product images vertically instead of side-by-side on mobile"},
	{ID: 19, Difficulty: DifficultyEasy, Channel: ChannelEmail, Problem: "No clear unsubscribe option", Solution: "Make unsubscribe link easy to find in footer. Consider offering frequency options instead of complete removal.", Example: "Add 'Update preferences' link next to unsubscribe option"},
	{ID: 20, Difficulty: DifficultyEasy, Channel: ChannelEmail, Problem: "Boring email design", Solution: "Use your brand colors, include product images, and create visual hierarchy with headers and spacing.", Example: "Add colorful header with logo and use product photos instead of text-only descriptions"},
	{ID: 21, Difficulty: DifficultyEasy, Channel: ChannelMarketing, Problem: "No social media presence", Solution: "Create business profiles on platforms where your customers spend time. Post regularly and engage with followers.", Example: "Set up Instagram business account and post 3 times per week"},
	{ID: 22, Difficulty: DifficultyEasy, Channel: ChannelMarketing, Problem: "Not collecting email addresses", Solution: "Add email signup forms with incentives like discounts or free guides. Place them strategically throughout your site.", Example: "Offer '10% off first order' popup after 30 seconds on site"},
	{ID: 23, Difficulty: DifficultyEasy, Channel: ChannelMarketing, Problem: "No customer testimonials", Solution: "Reach out to happy customers for reviews and testimonials. Offer small incentives for detailed feedback.", Example: "Email recent buyers: 'Share a photo for 15% off your next order'"},
	{ID: 24, Difficulty: DifficultyEasy, Channel: ChannelMarketing, Problem: "Missing Google My Business listing", Solution: "Claim and optimize your Google My Business profile with photos, hours, and customer reviews.", Example: "Add 10 high-quality photos of your products and storefront"},
	{ID: 25, Difficulty: DifficultyEasy, Channel: ChannelMarketing, Problem: "No referral program", Solution: "Create simple referral system where customers get rewards for bringing friends. Make sharing easy.", Example: "'Give $10, Get $10' - friends get discount, referrer gets store credit"},
	{ID: 26, Difficulty: DifficultyEasy, Channel: ChannelLandingPage, Problem: "Checkout process too long", Solution: "Reduce checkout to 2-3 steps maximum. Remove unnecessary form fields and offer guest checkout option.", Example: "Combine shipping and payment into one page instead of separate steps"},
	{ID: 27, Difficulty: DifficultyEasy, Channel: ChannelLandingPage, Problem: "No product videos", Solution: "Add short videos showing products in use. Even simple phone videos can increase conversions significantly.", Example: "30-second video showing how easy it is to assemble your furniture"},
	{ID: 28, Difficulty: DifficultyEasy, Channel: ChannelLandingPage, Problem: "Weak product descriptions", Solution: "Focus on benefits over features. Explain how the product solves problems or improves the customer's life.", Example: "Instead of '100% cotton', write 'Stays soft and comfortable all day long'"},
	{ID: 29, Difficulty: DifficultyEasy, Channel: ChannelLandingPage, Problem: "No size guides or specifications", Solution: "Provide detailed size charts, dimensions, and specifications to reduce returns and increase confidence.", Example: "Add interactive size guide with 'Find My Size' tool"},
	{ID: 30, Difficulty: DifficultyEasy, Channel: ChannelLandingPage, Problem: "Hidden shipping costs", Solution: "Display shipping costs upfront or offer free shipping threshold. Surprise costs cause cart abandonment.", Example: "'Free shipping on orders over $50' prominently displayed"},
	{ID: 31, Difficulty: DifficultyEasy, Channel: ChannelPaidAds, Problem: "Not tracking conversions properly", Solution: "Set up conversion tracking for purchases, email signups, and other key actions. Use this data to optimize campaigns.", Example: "Install Facebook Pixel and Google Analytics conversion tracking"},
	{ID: 32, Difficulty: DifficultyEasy, Channel: ChannelEmail, Problem: "No abandoned cart emails", Solution: "Set up automated emails to recover abandoned carts. Send 2-3 emails over a week with different approaches.", Example: "Email 1: Reminder, Email 2: Social proof, Email 3: Discount offer"},
	{ID: 33, Difficulty: DifficultyEasy, Channel: ChannelMarketing, Problem: "Not asking for reviews", Solution: "Follow up with customers after purchase to request reviews. Make the process simple with direct links.", Example: "Send email 7 days after delivery: 'How did we do? Leave a review'"},
	{ID: 34, Difficulty: DifficultyEasy, Channel: ChannelLandingPage, Problem: "No FAQ section", Solution: "Create comprehensive FAQ addressing common concerns about shipping, returns, sizing, and product details.", Example: "Add expandable FAQ section covering top 10 customer questions"},
	// Medium entries
	{ID: 35, Difficulty: DifficultyMedium, Channel: ChannelLandingPage, Problem: "No exit-intent popups to capture leaving visitors", Solution: "Implement exit-intent technology to show targeted offers when users are about to leave. Test different offers like discounts, free shipping, or lead magnets.", Example: "Show '10% off + free shipping' popup when mouse moves toward browser close button"},
	{ID: 36, Difficulty: DifficultyMedium, Channel: ChannelLandingPage, Problem: "Product descriptions don't address customer concerns", Solution: "A/B test benefit-focused vs feature-focused copy. Interview customers to understand their main concerns and address them directly in descriptions.", Example: "Test 'Wrinkle-free fabric saves you ironing time' vs 'Made with 65% polyester blend'"},
	{ID: 37, Difficulty: DifficultyMedium, Channel: ChannelLandingPage, Problem: "No live chat support during shopping", Solution: "Add live chat widget with proactive messages based on user behavior. Train team to handle common questions quickly.", Example: "Trigger chat after 2 minutes on product page: 'Need help choosing the right size?'"},
	{ID: 38, Difficulty: DifficultyMedium, Channel: ChannelLandingPage, Problem: "No urgency or scarcity indicators", Solution: "Show real inventory levels, recent purchases, or time-limited offers. Use social proof to create urgency without being pushy.", Example: "'3 people bought this in the last hour' or 'Only 7 left at this price'"},
	{ID: 39, Difficulty: DifficultyMedium, Channel: ChannelLandingPage, Problem: "Poor search functionality", Solution: "Implement smart search with autocomplete, typo tolerance, and filters. Show popular searches and no-results recommendations.", Example: "Add search suggestions dropdown and 'Did you mean...' for misspellings"},
	{ID: 40, Difficulty: DifficultyMedium, Channel: ChannelPaidAds, Problem: "Not using retargeting campaigns", Solution: "Set up retargeting for website visitors, cart abandoners, and past customers. Create different ad sets for each audience with relevant messaging.", Example: "Show 'Complete your purchase' ads to cart abandoners with 10% discount"},
	{ID: 41, Difficulty: DifficultyMedium, Channel: ChannelPaidAds, Problem: "Ad creative gets stale quickly", Solution: "Create ad creative testing schedule. Rotate new images, videos, and copy every 2-3 weeks to prevent ad fatigue.", Example: "Test 5 different product angles: lifestyle, close-up, comparison, in-use, packaging"},
	{ID: 42, Difficulty: DifficultyMedium, Channel: ChannelPaidAds, Problem: "Not optimizing for mobile users", Solution: "Create mobile-specific ad creative with vertical formats. Ensure landing pages load fast and are thumb-friendly.", Example: "Use 9:16 video format for Instagram Stories and TikTok ads"},
	{ID: 43, Difficulty: DifficultyMedium, Channel: ChannelPaidAds, Problem: "Poor audience targeting", Solution: "Create detailed buyer personas and use platform targeting options. Test lookalike audiences based on your best customers.", Example: "Target 'parents aged 25-40 interested in organic food' instead of broad 'parents'"},
	{ID: 44, Difficulty: DifficultyMedium, Channel: ChannelEmail, Problem: "No segmentation strategy", Solution: "Segment email list by purchase history, engagement level, and demographics. Send targeted campaigns to each segment.", Example: "Send VIP offers to customers who spent $500+, different content to new subscribers"},
	{ID: 45, Difficulty: DifficultyMedium, Channel: ChannelEmail, Problem: "Low email deliverability", Solution: "Clean email list regularly, use double opt-in, and monitor sender reputation. Avoid spam trigger words and maintain good engagement rates.", Example: "Remove subscribers who haven't opened emails in 6 months"},
	{ID: 46, Difficulty: DifficultyMedium, Channel: ChannelEmail, Problem: "No post-purchase email sequence", Solution: "Create automated sequence for order confirmation, shipping updates, delivery confirmation, and follow-up for reviews.", Example: "5-email sequence: Confirmation, Shipped, Delivered, How-to guide, Review request"},
	{ID: 47, Difficulty: DifficultyMedium, Channel: ChannelEmail, Problem: "Generic email content", Solution: "Personalize emails with customer names, purchase history, and browsing behavior. Create dynamic content based on preferences.", Example: "Show recommended products based on previous purchases in weekly newsletter"},
	{ID: 48, Difficulty: DifficultyMedium, Channel: ChannelMarketing, Problem: "No content marketing strategy", Solution: "Create valuable blog content, how-to guides, and videos that help customers. Focus on SEO and sharing on social media.", Example: "Weekly blog posts about 'How to style [your product]' with customer photos"},
	{ID: 49, Difficulty: DifficultyMedium, Channel: ChannelMarketing, Problem: "Not leveraging user-generated content", Solution: "Encourage customers to share photos using your products. Create branded hashtags and feature customer content on your site.", Example: "Create #MyBrandStyle hashtag and feature customer photos on homepage"},
	{ID: 50, Difficulty: DifficultyMedium, Channel: ChannelMarketing, Problem: "No influencer partnerships", Solution: "Partner with micro-influencers in your niche. Focus on engagement rates over follower count for better ROI.", Example: "Partner with 10 fitness micro-influencers (10K-100K followers) for workout gear"},
	{ID: 51, Difficulty: DifficultyMedium, Channel: ChannelLandingPage, Problem: "No product comparison tools", Solution: "Create comparison charts or tools to help customers choose between similar products. Highlight key differences and benefits.", Example: "Side-by-side comparison table for different mattress firmness levels"},
	{ID: 52, Difficulty: DifficultyMedium, Channel: ChannelLandingPage, Problem: "Weak homepage design", Solution: "Redesign homepage to clearly communicate value proposition, showcase best products, and guide visitors to key actions.", Example: "Add hero section with main benefit, featured products grid, and customer testimonials"},
	{ID: 53, Difficulty: DifficultyMedium, Channel: ChannelLandingPage, Problem: "No social proof on product pages", Solution: "Add customer photos, video testimonials, and detailed reviews to product pages. Show real people using your products.", Example: "Display customer photos wearing the clothing item in different settings"},
	{ID: 54, Difficulty: DifficultyMedium, Channel: ChannelPaidAds, Problem: "Not testing different ad formats", Solution: "Test carousel ads, video ads, collection ads, and single image ads. Different formats work better for different products and audiences.", Example: "Test video ads showing product in use vs static lifestyle images"},
	{ID: 55, Difficulty: DifficultyMedium, Channel: ChannelEmail, Problem: "No win-back campaigns", Solution: "Create automated campaigns to re-engage inactive subscribers and customers. Offer special incentives to return.", Example: "'We miss you' email series with increasing discounts: 10%, 15%, 20% off"},
	{ID: 56, Difficulty: DifficultyMedium, Channel: ChannelMarketing, Problem: "No loyalty program", Solution: "Create points-based or tier-based loyalty program to encourage repeat purchases and increase customer lifetime value.", Example: "Earn 1 point per $1 spent, 100 points = $10 off next order"},
	{ID: 57, Difficulty: DifficultyMedium, Channel: ChannelLandingPage, Problem: "Poor category page organization", Solution: "Organize products logically with clear filters and sorting options. Use high-quality category images and descriptions.", Example: "Add filters for size, color, price range, and customer rating on category pages"},
	{ID: 58, Difficulty: DifficultyMedium, Channel: ChannelPaidAds, Problem: "Not using video content", Solution: "Create product demonstration videos, customer testimonials, and behind-the-scenes content for ad campaigns.", Example: "15-second product demo video showing key features and benefits"},
	{ID: 59, Difficulty: DifficultyMedium, Channel: ChannelEmail, Problem: "No birthday or anniversary campaigns", Solution: "Collect customer birthdays and purchase anniversaries to send personalized offers and build emotional connection.", Example: "Send birthday email with 25% off coupon and personalized product recommendations"},
	{ID: 60, Difficulty: DifficultyMedium, Channel: ChannelMarketing, Problem: "Not optimizing for local search", Solution: "Optimize for local SEO with location-based keywords, local business listings, and location pages if applicable.", Example: "Create 'Best [product] in [city]' content and optimize Google My Business"},
	{ID: 61, Difficulty: DifficultyMedium, Channel: ChannelLandingPage, Problem: "No product bundling options", Solution: "Create product bundles and packages that increase average order value. Show savings compared to individual purchases.", Example: "'Complete skincare routine' bundle saves $25 vs buying items separately"},
	{ID: 62, Difficulty: DifficultyMedium, Channel: ChannelPaidAds, Problem: "Not optimizing ad scheduling", Solution: "Analyze when your customers are most active and adjust ad scheduling accordingly. Increase bids during peak hours.", Example: "Increase ad spend 20% during 7-9 PM when conversion rates are highest"},
	{ID: 63, Difficulty: DifficultyMedium, Channel: ChannelEmail, Problem: "No cross-sell campaigns", Solution: "Send targeted emails suggesting complementary products based on purchase history and browsing behavior.", Example: "Bought running shoes? Get email about running socks and fitness tracker"},
	{ID: 64, Difficulty: DifficultyMedium, Channel: ChannelMarketing, Problem: "No seasonal campaigns", Solution: "Plan marketing campaigns around holidays, seasons, and industry events. Create themed content and promotions.", Example: "Back-to-school campaign for office supplies with student discounts"},
	{ID: 65, Difficulty: DifficultyMedium, Channel: ChannelLandingPage, Problem: "No wishlist functionality", Solution: "Add wishlist feature to let customers save products for later. Send reminder emails about saved items.", Example: "Heart icon on products to save to wishlist, email reminders after 3 days"},
	{ID: 66, Difficulty: DifficultyMedium, Channel: ChannelPaidAds, Problem: "Not using customer data for targeting", Solution: "Upload customer email lists for lookalike audiences and exclusion targeting. Use purchase data to create custom audiences.", Example: "Create lookalike audience based on customers who spent $200+ in last 90 days"},
	{ID: 67, Difficulty: DifficultyMedium, Channel: ChannelMarketing, Problem: "No partnership opportunities", Solution: "Partner with complementary businesses for cross-promotion, joint campaigns, or affiliate programs.", Example: "Partner with interior designers to promote home decor products"},
	// Hard entries
	{ID: 68, Difficulty: DifficultyHard, Channel: ChannelLandingPage, Problem: "No AI-powered product recommendations", Solution: "Implement machine learning algorithms to show personalized product recommendations based on browsing history, purchase patterns, and similar customer behavior.", Example: "Amazon-style 'Customers who bought this also bought' with 35% higher conversion rates"},
	{ID: 69, Difficulty: DifficultyHard, Channel: ChannelLandingPage, Problem: "Generic checkout experience for all customers", Solution: "Build custom checkout flows based on customer segments, purchase history, and behavior patterns. Optimize each step for different user types.", Example: "VIP customers get one-click checkout, new customers get guided experience with trust signals"},
	{ID: 70, Difficulty: DifficultyHard, Channel: ChannelMarketing, Problem: "No advanced customer segmentation", Solution: "Create behavioral-based customer segments using RFM analysis (Recency, Frequency, Monetary). Develop targeted strategies for each segment.", Example: "Champions (high RFM) get exclusive previews, At-risk customers get win-back campaigns"},
	{ID: 71, Difficulty: DifficultyHard, Channel: ChannelMarketing, Problem: "No predictive analytics for customer behavior", Solution: "Implement predictive models to forecast customer lifetime value, churn probability, and next purchase timing.", Example: "Identify customers 80% likely to churn and trigger retention campaigns automatically"},
	{ID: 72, Difficulty: DifficultyHard, Channel: ChannelPaidAds, Problem: "Manual bid management inefficiency", Solution: "Implement automated bidding strategies using machine learning. Set up dynamic bid adjustments based on device, location, time, and audience.", Example: "Automated bidding increases ROAS by 23% while reducing manual work by 80%"},
	{ID: 73, Difficulty: DifficultyHard, Channel: ChannelEmail, Problem: "Static email content for all subscribers", Solution: "Create dynamic email content that changes based on recipient behavior, preferences, and real-time data like weather or inventory.", Example: "Email shows different products based on browsing history and current weather in recipient's location"},
	{ID: 74, Difficulty: DifficultyHard, Channel: ChannelLandingPage, Problem: "No real-time personalization", Solution: "Implement real-time website personalization showing different content, offers, and products based on visitor behavior and characteristics.", Example: "First-time visitors see social proof, returning visitors see new arrivals, VIPs see exclusive offers"},
	{ID: 75, Difficulty: DifficultyHard, Channel: ChannelMarketing, Problem: "No omnichannel customer experience", Solution: "Create seamless experience across all touchpoints - website, email, social media, ads, and customer service. Unify customer data and messaging.", Example: "Customer sees same personalized recommendations on website, email, and retargeting ads"},
	{ID: 76, Difficulty: DifficultyHard, Channel: ChannelPaidAds, Problem: "No advanced attribution modeling", Solution: "Implement multi-touch attribution to understand the full customer journey and optimize budget allocation across channels.", Example: "Discover that YouTube ads don't convert directly but influence 40% of Facebook conversions"},
	{ID: 77, Difficulty: DifficultyHard, Channel: ChannelLandingPage, Problem: "No progressive web app features", Solution: "Convert website to Progressive Web App (PWA) for faster loading, offline functionality, and app-like experience on mobile.", Example: "PWA reduces bounce rate by 42% and increases mobile conversions by 36%"},
	{ID: 78, Difficulty: DifficultyHard, Channel: ChannelEmail, Problem: "No advanced automation workflows", Solution: "Build complex automation workflows with multiple triggers, conditions, and paths based on customer behavior and data.", Example: "15-step workflow: Welcome → Browse behavior → Purchase → Post-purchase → Loyalty → Win-back"},
	{ID: 79, Difficulty: DifficultyHard, Channel: ChannelMarketing, Problem: "No voice search optimization", Solution: "Optimize content and SEO for voice search queries. Focus on conversational keywords and featured snippet optimization.", Example: "Optimize for 'What's the best running shoe for beginners' instead of 'best running shoes'"},
	{ID: 80, Difficulty: DifficultyHard, Channel: ChannelLandingPage, Problem: "No advanced A/B testing program", Solution: "Implement multivariate testing and statistical significance tracking. Test multiple elements simultaneously and measure long-term impact.", Example: "Test 16 combinations of headline, CTA, and image simultaneously with proper statistical analysis"},
	{ID: 81, Difficulty: DifficultyHard, Channel: ChannelPaidAds, Problem: "No creative automation at scale", Solution: "Build systems to automatically generate and test ad creative variations using templates, dynamic content, and AI tools.", Example: "Generate 100 ad variations automatically by combining product images, headlines, and CTAs"},
	{ID: 82, Difficulty: DifficultyHard, Channel: ChannelMarketing, Problem: "No customer lifetime value optimization", Solution: "Build comprehensive CLV models and optimize all marketing activities to maximize long-term customer value rather than short-term conversions.", Example: "Shift budget from acquisition to retention, increasing CLV by 45% while reducing CAC"},
	{ID: 83, Difficulty: DifficultyHard, Channel: ChannelLandingPage, Problem: "No advanced search and discovery", Solution: "Implement AI-powered search with natural language processing, visual search, and intelligent filters based on user intent.", Example: "Visual search allows customers to upload photos and find similar products instantly"},
	{ID: 84, Difficulty: DifficultyHard, Channel: ChannelEmail, Problem: "No predictive send time optimization", Solution: "Use machine learning to determine optimal send times for each individual subscriber based on their engagement patterns.", Example: "Send emails when each subscriber is most likely to open, increasing open rates by 28%"},
	{ID: 85, Difficulty: DifficultyHard, Channel: ChannelMarketing, Problem: "No advanced competitive intelligence", Solution: "Implement automated competitive monitoring for pricing, promotions, content, and ad strategies. React quickly to market changes.", Example: "Automatically adjust prices when competitors change theirs, maintaining optimal margin and competitiveness"},
	{ID: 86, Difficulty: DifficultyHard, Channel: ChannelPaidAds, Problem: "No cross-platform campaign optimization", Solution: "Build unified campaign management across all platforms with shared learnings and budget optimization based on performance.", Example: "Automatically shift budget from Facebook to Google when Google performs better for specific products"},
	{ID: 87, Difficulty: DifficultyHard, Channel: ChannelLandingPage, Problem: "No advanced inventory management integration", Solution: "Connect inventory levels to marketing campaigns, automatically adjusting ad spend and promotions based on stock levels.", Example: "Reduce ad spend for low-stock items and increase promotion for overstocked products"},
	{ID: 88, Difficulty: DifficultyHard, Channel: ChannelMarketing, Problem: "No advanced customer journey mapping", Solution: "Map complete customer journeys with all touchpoints and optimize each interaction for maximum impact on conversion and retention.", Example: "Identify that customers who watch product videos are 3x more likely to purchase within 30 days"},
	{ID: 89, Difficulty: DifficultyHard, Channel: ChannelEmail, Problem: "No advanced deliverability optimization", Solution: "Implement sophisticated email deliverability monitoring with IP warming, domain reputation management, and engagement-based sending.", Example: "Maintain 98%+ inbox placement rate through advanced reputation management"},
	{ID: 90, Difficulty: DifficultyHard, Channel: ChannelPaidAds, Problem: "No advanced audience modeling", Solution: "Build custom audience models using first-party data, lookalike modeling, and behavioral prediction algorithms.", Example: "Create 'High-Intent Shoppers' audience with 5x higher conversion rate than standard targeting"},
	{ID: 91, Difficulty: DifficultyHard, Channel: ChannelLandingPage, Problem: "No advanced conversion rate optimization", Solution: "Implement comprehensive CRO program with heat mapping, user session recording, and advanced statistical testing.", Example: "Systematic CRO program increases conversion rate from 2.1% to 4.7% over 12 months"},
	{ID: 92, Difficulty: DifficultyHard, Channel: ChannelMarketing, Problem: "No advanced retention modeling", Solution: "Build predictive models to identify at-risk customers and automatically trigger personalized retention campaigns.", Example: "Reduce churn rate by 35% through predictive retention campaigns triggered by behavior changes"},
	{ID: 93, Difficulty: DifficultyHard, Channel: ChannelEmail, Problem: "No advanced content optimization", Solution: "Use AI to optimize email content, subject lines, and send times based on individual subscriber preferences and behavior.", Example: "AI-generated subject lines increase open rates by 41% compared to manually written ones"},
	{ID: 94, Difficulty: DifficultyHard, Channel: ChannelPaidAds, Problem: "No advanced creative testing framework", Solution: "Build systematic creative testing framework with automated performance analysis and creative element optimization.", Example: "Test 500+ creative variations monthly with automated winner identification and scaling"},
	{ID: 95, Difficulty: DifficultyHard, Channel: ChannelLandingPage, Problem: "No advanced personalization engine", Solution: "Build comprehensive personalization engine that adapts entire website experience based on visitor characteristics and behavior.", Example: "Personalized experiences increase conversion rates by 67% and average order value by 23%"},
	{ID: 96, Difficulty: DifficultyHard, Channel: ChannelMarketing, Problem: "No advanced attribution and measurement", Solution: "Implement advanced measurement framework with incrementality testing, media mix modeling, and unified attribution.", Example: "Discover true impact of each channel and optimize budget allocation for 31% better ROAS"},
	{ID: 97, Difficulty: DifficultyHard, Channel: ChannelEmail, Problem: "No advanced lifecycle marketing", Solution: "Build sophisticated lifecycle marketing program with predictive modeling and automated journey optimization.", Example: "Automated lifecycle campaigns generate 45% of total email revenue with minimal manual work"},
	{ID: 98, Difficulty: DifficultyHard, Channel: ChannelPaidAds, Problem: "No advanced bid optimization", Solution: "Implement custom bidding algorithms that consider profit margins, inventory levels, and customer lifetime value.", Example: "Custom bidding increases profit per conversion by 52% while maintaining volume"},
	{ID: 99, Difficulty: DifficultyHard, Channel: ChannelLandingPage, Problem: "No advanced mobile optimization", Solution: "Build mobile-first experience with progressive enhancement, AMP pages, and mobile-specific conversion optimization.", Example: "Mobile-optimized experience increases mobile conversion rate from 1.2% to 3.8%"},
	{ID: 100, Difficulty: DifficultyHard, Channel: ChannelMarketing, Problem: "No advanced data integration", Solution: "Build unified data platform connecting all marketing tools, customer data, and business systems for complete visibility.", Example: "Unified data platform enables real-time decision making and increases marketing efficiency by 40%"},
	{ID: 101, Difficulty: DifficultyHard, Channel: ChannelMarketing, Problem: "No advanced marketing automation", Solution: "Implement enterprise-level marketing automation with AI-driven campaign optimization and cross-channel orchestration.", Example: "Advanced automation increases marketing qualified leads by 78% while reducing manual work by 85%"},
}
